package input

import (
	"rickdex/internal/domain"
	"rickdex/internal/ui/logic"
	"rickdex/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State      state.State
	WindowSize int
}

func (c *ModelContext) Query() string {
	return c.State.Search.Query
}

// SuggestionCount returns the number of suggestions currently shown
func (c *ModelContext) SuggestionCount() int {
	if !c.State.SuggestionsVisible() {
		return 0
	}
	return len(c.State.Search.Suggestions)
}

func (c *ModelContext) Page() int {
	return c.State.Search.Page
}

func (c *ModelContext) TotalPages() int {
	return c.State.Search.TotalPages
}

// PageWindow returns the page numbers shown in the page bar
func (c *ModelContext) PageWindow() []int {
	return logic.PageWindow(c.State.Search.Page, c.State.Search.TotalPages, c.WindowSize)
}

// CardCount returns the number of cards currently drawn
func (c *ModelContext) CardCount() int {
	return len(c.State.Visible())
}

func (c *ModelContext) CategoryOptions(cat domain.Category) []string {
	return c.State.Filter.Options.For(cat)
}

func (c *ModelContext) ActiveCategory() domain.Category {
	return c.State.Filter.ActiveCategory
}

func (c *ModelContext) ActiveValue() string {
	return c.State.Filter.ActiveValue
}
