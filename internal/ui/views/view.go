package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rickdex/internal/domain"
)

// SuggestionsTop is the screen row of the first suggestion: top padding,
// title and search line come first. Mouse clicks are mapped back with it.
const SuggestionsTop = 3

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Mode   string

	InputView        string
	Suggestions      []string
	ShowSuggestions  bool
	HighlightedIndex int

	Loading      bool
	SpinnerView  string
	ErrorMessage string // search error: replaces the results area
	FilterError  string // category error: replaces the cards

	Cards          []domain.Character
	SelectedIndex  int
	ViewportOffset int
	Columns        int
	Rows           int
	VisibleStart   int // cards[VisibleStart:VisibleEnd] are drawn
	VisibleEnd     int

	Page       int
	TotalPages int
	Window     []int

	Categories     []domain.Category
	ActiveCategory domain.Category
	ActiveValue    string
	OptionsLoaded  bool
	CategoryCursor int
	ValueCursor    int // 0 is "All"
	CursorOptions  []string

	StatusMessage string
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	cardRender *CardRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		cardRender: NewCardRenderer(styles),
	}
}

// Cards returns the card renderer
func (r *Renderer) Cards() *CardRenderer {
	return r.cardRender
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")
	content.WriteString(r.renderSearchLine(state))
	content.WriteString("\n")

	if state.ShowSuggestions && len(state.Suggestions) > 0 {
		content.WriteString(r.RenderSuggestions(state.Suggestions, state.HighlightedIndex))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(r.RenderCategoryBar(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderResults(state))

	if state.TotalPages > 0 {
		content.WriteString("\n\n")
		content.WriteString(r.RenderPageBar(state.Page, state.TotalPages, state.Window))
	}

	// Push the help bar to the bottom
	if state.HelpView != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2 // container padding
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		} else {
			content.WriteString("\n")
		}
		content.WriteString(state.HelpView)
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("rickdex")
	right := ""
	if state.ActiveCategory != "" && state.ActiveValue != "" {
		right = r.styles.CategoryActive.Render(fmt.Sprintf("[%s: %s]", state.ActiveCategory, state.ActiveValue))
	}
	if state.StatusMessage != "" {
		if right != "" {
			right += "  "
		}
		right += r.styles.Warning.Render(state.StatusMessage)
	}
	if right == "" {
		return logo
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderSearchLine(state ViewState) string {
	prompt := r.styles.Prompt.Render("Search: ")
	if state.Mode != "search" {
		prompt = r.styles.Dim.Render("Search: ")
	}
	return prompt + state.InputView
}

// RenderSuggestions renders the suggestion panel, one name per line
func (r *Renderer) RenderSuggestions(suggestions []string, highlighted int) string {
	lines := make([]string, 0, len(suggestions))
	for i, s := range suggestions {
		if i == highlighted {
			lines = append(lines, r.styles.SuggestionHighlight.Render("› "+s))
		} else {
			lines = append(lines, r.styles.Suggestion.Render("  "+s))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderCategoryBar renders the category selector. In category mode the
// cursor category is expanded with its values.
func (r *Renderer) RenderCategoryBar(state ViewState) string {
	var parts []string
	for i, c := range state.Categories {
		label := string(c)
		if c == state.ActiveCategory && state.ActiveValue != "" {
			label = fmt.Sprintf("%s: %s", c, state.ActiveValue)
		}
		switch {
		case state.Mode == "category" && i == state.CategoryCursor:
			parts = append(parts, r.styles.CategoryCursor.Render(" "+label+" "))
		case c == state.ActiveCategory && state.ActiveValue != "":
			parts = append(parts, r.styles.CategoryActive.Render(" "+label+" "))
		default:
			parts = append(parts, r.styles.Category.Render(" "+label+" "))
		}
	}
	bar := r.styles.Dim.Render("Filter:") + " " + strings.Join(parts, r.styles.Dim.Render("|"))
	if !state.OptionsLoaded {
		bar += r.styles.Dim.Render("  (loading options)")
	}

	if state.Mode != "category" {
		return bar
	}

	values := make([]string, 0, len(state.CursorOptions)+1)
	for i, v := range append([]string{"All"}, state.CursorOptions...) {
		if i == state.ValueCursor {
			values = append(values, r.styles.CategoryCursor.Render(" "+v+" "))
		} else {
			values = append(values, r.styles.Category.Render(" "+v+" "))
		}
	}
	return bar + "\n" + lipgloss.NewStyle().Width(max(20, state.Width-4)).Render(strings.Join(values, " "))
}

func (r *Renderer) renderResults(state ViewState) string {
	switch {
	case state.Loading:
		return r.styles.Loading.Render(strings.TrimSpace(state.SpinnerView + " Loading..."))
	case state.ErrorMessage != "":
		return r.styles.Error.Render(state.ErrorMessage)
	case state.FilterError != "":
		return r.styles.Error.Render(state.FilterError)
	case len(state.Cards) == 0:
		return r.styles.Dim.Render("No characters on this page match the query.")
	}

	grid := r.cardRender.RenderGrid(state.Cards, state.SelectedIndex, state.VisibleStart, state.VisibleEnd, state.Columns)
	total := (len(state.Cards) + max(1, state.Columns) - 1) / max(1, state.Columns)
	if total > state.Rows {
		grid += "\n" + r.styles.Dim.Render(fmt.Sprintf("rows %d-%d of %d",
			state.ViewportOffset+1, min(total, state.ViewportOffset+state.Rows), total))
	}
	return grid
}

// RenderPageBar renders Back, the page window and Next. Back is disabled on
// the first page and Next on the last.
func (r *Renderer) RenderPageBar(page, totalPages int, window []int) string {
	var parts []string

	if page > 1 {
		parts = append(parts, r.styles.PageButton.Render("‹ Back"))
	} else {
		parts = append(parts, r.styles.PageDisabled.Render("‹ Back"))
	}

	for i, p := range window {
		label := fmt.Sprintf("%d", p)
		if p == page {
			parts = append(parts, r.styles.PageCurrent.Render(label))
		} else {
			parts = append(parts, r.styles.PageButton.Render(label)+r.styles.Dim.Render(fmt.Sprintf("(%d)", i+1)))
		}
	}

	if page < totalPages {
		parts = append(parts, r.styles.PageButton.Render("Next ›"))
	} else {
		parts = append(parts, r.styles.PageDisabled.Render("Next ›"))
	}

	return strings.Join(parts, " ") + r.styles.Dim.Render(fmt.Sprintf("   page %d of %d", page, totalPages))
}
