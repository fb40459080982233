package logic

// MoveHighlight moves a suggestion highlight by delta within count entries.
// Moving down stops at the last entry and moving up stops at the first,
// there is no wraparound. From -1 (nothing highlighted) only a downward move
// has an effect.
func MoveHighlight(current, delta, count int) int {
	switch {
	case delta > 0:
		if current < count-1 {
			return current + 1
		}
	case delta < 0:
		if current > 0 {
			return current - 1
		}
	}
	return current
}

// Navigator handles card cursor movement and viewport management.
// Cards are laid out row-major in a grid of Columns; the viewport is
// counted in rows.
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportRows   int
	columns        int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{columns: 1, viewportRows: 1}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportRows, columns, totalItems int) {
	if columns < 1 {
		columns = 1
	}
	if viewportRows < 1 {
		viewportRows = 1
	}
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportRows = viewportRows
	n.columns = columns
	n.totalItems = totalItems
	n.clamp()
}

// SelectedIndex returns the current selected index
func (n *Navigator) SelectedIndex() int {
	return n.selectedIndex
}

// ViewportOffset returns the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// Columns returns the number of cards per row
func (n *Navigator) Columns() int {
	return n.columns
}

// Rows returns the number of card rows inside the viewport
func (n *Navigator) Rows() int {
	return n.viewportRows
}

// Navigate moves the cursor and returns the new selection and viewport offset.
// direction is one of "up", "down", "left", "right", "home", "end".
func (n *Navigator) Navigate(direction string) (int, int) {
	if n.totalItems == 0 {
		n.selectedIndex = 0
		n.viewportOffset = 0
		return 0, 0
	}

	switch direction {
	case "up":
		if n.selectedIndex-n.columns >= 0 {
			n.selectedIndex -= n.columns
		}
	case "down":
		if n.selectedIndex+n.columns < n.totalItems {
			n.selectedIndex += n.columns
		} else if n.row(n.selectedIndex) < n.row(n.totalItems-1) {
			// last row may be partial
			n.selectedIndex = n.totalItems - 1
		}
	case "left":
		if n.selectedIndex%n.columns > 0 {
			n.selectedIndex--
		}
	case "right":
		if n.selectedIndex%n.columns < n.columns-1 && n.selectedIndex+1 < n.totalItems {
			n.selectedIndex++
		}
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = n.totalItems - 1
	}

	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// VisibleRange returns the half-open index range of cards inside the viewport
func (n *Navigator) VisibleRange() (start, end int) {
	start = n.viewportOffset * n.columns
	end = start + n.viewportRows*n.columns
	if end > n.totalItems {
		end = n.totalItems
	}
	if start > end {
		start = end
	}
	return start, end
}

func (n *Navigator) row(index int) int {
	return index / n.columns
}

func (n *Navigator) totalRows() int {
	return (n.totalItems + n.columns - 1) / n.columns
}

func (n *Navigator) clamp() {
	if n.selectedIndex >= n.totalItems {
		n.selectedIndex = n.totalItems - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
	n.ensureSelectedVisible()
}

// ensureSelectedVisible adjusts the viewport to keep the selected card visible
func (n *Navigator) ensureSelectedVisible() {
	row := n.row(n.selectedIndex)
	if row < n.viewportOffset {
		n.viewportOffset = row
	}
	if row >= n.viewportOffset+n.viewportRows {
		n.viewportOffset = row - n.viewportRows + 1
	}

	maxOffset := n.totalRows() - n.viewportRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
