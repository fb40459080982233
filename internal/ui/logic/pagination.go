package logic

// PageWindow returns the page numbers to show as buttons around page.
// The window starts size/2 pages before the current page (never below 1)
// and holds at most size entries, clipped at totalPages. Near the last
// page the window shrinks rather than shifting left, so page 10 of 10
// with size 4 yields [8 9 10].
func PageWindow(page, totalPages, size int) []int {
	if size < 1 || totalPages < 1 {
		return nil
	}
	start := max(1, page-size/2)
	end := min(totalPages, start+size-1)

	pages := make([]int, 0, size)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// PrevPage is the Back button: one page back, never below 1
func PrevPage(page int) int {
	if page > 1 {
		return page - 1
	}
	return 1
}

// NextPage is the Next button: one page forward, never past totalPages
func NextPage(page, totalPages int) int {
	if page < totalPages {
		return page + 1
	}
	return totalPages
}
