package state

import (
	"fmt"
	"strings"

	"rickdex/internal/domain"
	"rickdex/internal/ui/logic"
)

// Start issues the requests of a freshly opened browser: the first page of
// the empty query and the category option lists.
func Start(s State) (State, []domain.DomainEvent) {
	req := requestPage(&s)
	return s, []domain.DomainEvent{req, domain.OptionsRequestedEvent{}}
}

// Transition applies one event and returns the next snapshot together with
// the request events to publish. Arrivals carrying an outdated generation
// are discarded so a slow response cannot overwrite newer state.
func Transition(s State, event domain.DomainEvent) (State, []domain.DomainEvent) {
	var effects []domain.DomainEvent

	switch e := event.(type) {
	case QueryChanged:
		s.Search.Query = e.Text
		s.Search.Page = 1

		s.Search.SuggestionGeneration++
		if e.Text != "" {
			s.Search.ShowSuggestions = true
			effects = append(effects, domain.SuggestionsRequestedEvent{
				Generation: s.Search.SuggestionGeneration,
				Text:       e.Text,
			})
		} else {
			s.Search.Suggestions = nil
			s.Search.ShowSuggestions = false
			s.Search.HighlightedIndex = -1
		}

		effects = append(effects, requestPage(&s))

	case PageChanged:
		page := e.Page
		if page < 1 {
			page = 1
		}
		if page == s.Search.Page {
			return s, nil
		}
		s.Search.Page = page
		effects = append(effects, requestPage(&s))

	case HighlightMoved:
		s.Search.HighlightedIndex = logic.MoveHighlight(s.Search.HighlightedIndex, e.Delta, len(s.Search.Suggestions))

	case EnterPressed:
		if name, ok := s.HighlightedSuggestion(); ok {
			return Transition(s, SuggestionCommitted{Name: name})
		}

	case SuggestionCommitted:
		changed := e.Name != s.Search.Query
		s.Search.Query = e.Name
		s.Search.Suggestions = nil
		s.Search.ShowSuggestions = false
		s.Search.HighlightedIndex = -1
		s.Search.SuggestionGeneration++
		if changed {
			effects = append(effects, requestPage(&s))
		}

	case CategorySelected:
		s.Filter = selectCategory(s.Filter, s.Search.Results, e.Category, e.Value)

	case domain.PageArrivedEvent:
		if e.Generation != s.Search.PageGeneration {
			return s, nil
		}
		s.Search.Loading = false
		if len(e.Result.Characters) > 0 {
			s.Search.Results = e.Result.Characters
			s.Search.TotalPages = max(1, e.Result.Pages)
			s.Search.ErrorMessage = ""
		} else {
			s.Search.Results = nil
			s.Search.ErrorMessage = NoMatchMessage(s.Search.Query, s.Search.Suggestions)
		}
		s.Filter = resetFilter(s.Filter, s.Search.Results)

	case domain.PageFailedEvent:
		if e.Generation != s.Search.PageGeneration {
			return s, nil
		}
		s.Search.Loading = false
		s.Search.Results = nil
		s.Search.ErrorMessage = FailureMessage(e.Err)
		s.Filter = resetFilter(s.Filter, s.Search.Results)

	case domain.SuggestionsArrivedEvent:
		if e.Generation != s.Search.SuggestionGeneration {
			return s, nil
		}
		s.Search.Suggestions = e.Names
		s.Search.HighlightedIndex = -1

	case domain.OptionsLoadedEvent:
		s.Filter.Options = e.Options
		s.Filter.OptionsLoaded = true
	}

	return s, effects
}

// Visible returns the cards to draw: the category-filtered page narrowed by
// a case-insensitive match of the query against the name
func (s State) Visible() []domain.Character {
	return logic.FilterByName(s.Filter.Filtered, s.Search.Query)
}

// NoMatchMessage is shown when the server has no character named like query
func NoMatchMessage(query string, suggestions []string) string {
	return fmt.Sprintf("No characters found with the name \"%s\". Maybe you want to see: %s",
		query, strings.Join(suggestions, ", "))
}

// FailureMessage is shown when a page request fails
func FailureMessage(err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return "Error searching characters: " + msg
}

// CategoryMessage is shown when a category filter leaves nothing on the page
func CategoryMessage(c domain.Category) string {
	return fmt.Sprintf("No characters found with the selected category \"%s\".", c)
}

func requestPage(s *State) domain.PageRequestedEvent {
	s.Search.PageGeneration++
	s.Search.Loading = true
	return domain.PageRequestedEvent{
		Generation: s.Search.PageGeneration,
		Query:      s.Search.Query,
		Page:       s.Search.Page,
	}
}

func selectCategory(f FilterState, results []domain.Character, c domain.Category, value string) FilterState {
	f.ActiveCategory = c
	f.ActiveValue = value
	f.Filtered = logic.FilterByCategory(results, c, value)
	if len(f.Filtered) == 0 {
		f.ErrorMessage = CategoryMessage(c)
	} else {
		f.ErrorMessage = ""
	}
	return f
}

// resetFilter mirrors a fresh filter bar: every applied page starts unfiltered
func resetFilter(f FilterState, results []domain.Character) FilterState {
	f.ActiveCategory = ""
	f.ActiveValue = ""
	f.Filtered = results
	f.ErrorMessage = ""
	return f
}
