package state

import (
	"rickdex/internal/domain"
)

// UI event types. Arrivals from the fetch service reuse the domain events.
const (
	EventQueryChanged        domain.EventType = "QueryChanged"
	EventPageChanged         domain.EventType = "PageChanged"
	EventHighlightMoved      domain.EventType = "HighlightMoved"
	EventEnterPressed        domain.EventType = "EnterPressed"
	EventSuggestionCommitted domain.EventType = "SuggestionCommitted"
	EventCategorySelected    domain.EventType = "CategorySelected"
)

// QueryChanged is emitted on every edit of the search box
type QueryChanged struct {
	Text string
}

func (e QueryChanged) Type() domain.EventType { return EventQueryChanged }

// PageChanged selects a page; callers clamp it to [1, TotalPages]
type PageChanged struct {
	Page int
}

func (e PageChanged) Type() domain.EventType { return EventPageChanged }

// HighlightMoved moves the suggestion highlight; Delta > 0 is down
type HighlightMoved struct {
	Delta int
}

func (e HighlightMoved) Type() domain.EventType { return EventHighlightMoved }

// EnterPressed commits the highlighted suggestion, if there is one
type EnterPressed struct{}

func (e EnterPressed) Type() domain.EventType { return EventEnterPressed }

// SuggestionCommitted replaces the query with a chosen suggestion
type SuggestionCommitted struct {
	Name string
}

func (e SuggestionCommitted) Type() domain.EventType { return EventSuggestionCommitted }

// CategorySelected applies a category filter; an empty Value clears it
type CategorySelected struct {
	Category domain.Category
	Value    string
}

func (e CategorySelected) Type() domain.EventType { return EventCategorySelected }
