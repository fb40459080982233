package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rickdex/internal/domain"
)

// Card geometry including border
const (
	CardWidth  = 38
	CardHeight = 8
	cardGap    = 1
)

// CardRenderer draws character cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// RenderCard renders one character card
func (r *CardRenderer) RenderCard(c domain.Character, selected bool) string {
	inner := CardWidth - 4 // border and padding

	lines := []string{
		r.styles.CardName.Render(truncate(c.Name, inner)),
		r.styles.StatusBadge(c.Status) + r.styles.Dim.Render(" - "+truncate(c.Species, inner-12)),
		r.field("Gender", c.Gender, inner),
		r.field("Type", valueOr(c.Type, "-"), inner),
		r.field("Location", c.LocationName(), inner),
		r.styles.Dim.Render(truncateLeft(c.Image, inner)),
	}

	style := r.styles.Card
	if selected {
		style = r.styles.CardSelected
	}
	return style.Width(CardWidth - 2).Render(strings.Join(lines, "\n"))
}

// RenderGrid lays out cards[start:end] in rows of columns
func (r *CardRenderer) RenderGrid(cards []domain.Character, selected, start, end, columns int) string {
	if columns < 1 {
		columns = 1
	}
	end = min(end, len(cards))
	var out []string
	for first := max(0, start); first < end; first += columns {
		var rowCards []string
		for i := first; i < first+columns && i < end; i++ {
			card := r.RenderCard(cards[i], i == selected)
			if len(rowCards) > 0 {
				card = lipgloss.NewStyle().MarginLeft(cardGap).Render(card)
			}
			rowCards = append(rowCards, card)
		}
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, rowCards...))
	}
	return strings.Join(out, "\n")
}

// RenderDetail renders the full character sheet shown in the pager
func (r *CardRenderer) RenderDetail(c domain.Character) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(c.Name))
	b.WriteString("\n\n")
	rows := [][2]string{
		{"ID", fmt.Sprintf("%d", c.ID)},
		{"Status", r.styles.StatusBadge(c.Status)},
		{"Species", valueOr(c.Species, "-")},
		{"Type", valueOr(c.Type, "-")},
		{"Gender", valueOr(c.Gender, "-")},
		{"Location", c.LocationName()},
		{"Image", c.Image},
	}
	if c.Location != nil && c.Location.URL != "" {
		rows = append(rows, [2]string{"Location URL", c.Location.URL})
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "  %s %s\n", r.styles.Label.Render(fmt.Sprintf("%-13s", row[0]+":")), row[1])
	}
	return b.String()
}

// GridColumns returns how many cards fit side by side in width
func GridColumns(width int) int {
	cols := (width + cardGap) / (CardWidth + cardGap)
	return max(1, cols)
}

// GridRows returns how many card rows fit in height
func GridRows(height int) int {
	return max(1, height/CardHeight)
}

func (r *CardRenderer) field(label, value string, width int) string {
	prefix := label + ": "
	return r.styles.Label.Render(prefix) + truncate(value, width-len(prefix))
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// truncateLeft keeps the end of s, where image URLs differ
func truncateLeft(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return "…" + string(r[len(r)-n+1:])
}
