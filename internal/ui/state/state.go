package state

import (
	"rickdex/internal/domain"
)

// SearchState holds the search box, pagination and suggestion state
type SearchState struct {
	Query            string
	Page             int // 1-based
	TotalPages       int // >= 1
	Results          []domain.Character
	Suggestions      []string
	ShowSuggestions  bool
	HighlightedIndex int // -1 when no suggestion is highlighted
	Loading          bool
	ErrorMessage     string

	// Only arrivals tagged with the current generation are applied
	PageGeneration       uint64
	SuggestionGeneration uint64
}

// FilterState holds the category filter applied to the loaded page
type FilterState struct {
	Options        domain.OptionLists
	OptionsLoaded  bool
	ActiveCategory domain.Category // "" when no category is active
	ActiveValue    string
	Filtered       []domain.Character // always a subset of SearchState.Results
	ErrorMessage   string
}

// State is an immutable snapshot of the browser. Transition returns a new
// snapshot and never mutates slices of the old one.
type State struct {
	Search SearchState
	Filter FilterState
}

// New returns the initial snapshot: empty query on page 1, nothing loaded
func New() State {
	return State{
		Search: SearchState{
			Page:             1,
			TotalPages:       1,
			HighlightedIndex: -1,
		},
	}
}

// SuggestionsVisible reports whether the suggestion panel should be drawn
func (s State) SuggestionsVisible() bool {
	return s.Search.ShowSuggestions && len(s.Search.Suggestions) > 0
}

// HighlightedSuggestion returns the highlighted suggestion, if any
func (s State) HighlightedSuggestion() (string, bool) {
	i := s.Search.HighlightedIndex
	if i < 0 || i >= len(s.Search.Suggestions) {
		return "", false
	}
	return s.Search.Suggestions[i], true
}
