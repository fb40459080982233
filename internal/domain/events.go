package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageRequested        EventType = "PageRequested"
	EventPageArrived          EventType = "PageArrived"
	EventPageFailed           EventType = "PageFailed"
	EventSuggestionsRequested EventType = "SuggestionsRequested"
	EventSuggestionsArrived   EventType = "SuggestionsArrived"
	EventOptionsRequested     EventType = "OptionsRequested"
	EventOptionsLoaded        EventType = "OptionsLoaded"
	EventError                EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageRequestedEvent asks for one page of characters matching Query.
// Generation tags the request so stale answers can be dropped.
type PageRequestedEvent struct {
	Generation uint64
	Query      string
	Page       int
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// PageArrivedEvent carries a page fetched for a PageRequestedEvent.
// An empty Characters slice means the server reported no match.
type PageArrivedEvent struct {
	Generation uint64
	Query      string
	Page       int
	Result     CharacterPage
}

func (e PageArrivedEvent) Type() EventType { return EventPageArrived }

// PageFailedEvent is emitted when a page request fails in transport or decoding
type PageFailedEvent struct {
	Generation uint64
	Query      string
	Page       int
	Err        error
}

func (e PageFailedEvent) Type() EventType { return EventPageFailed }

// SuggestionsRequestedEvent asks for autocomplete names for Text
type SuggestionsRequestedEvent struct {
	Generation uint64
	Text       string
}

func (e SuggestionsRequestedEvent) Type() EventType { return EventSuggestionsRequested }

// SuggestionsArrivedEvent carries suggestion names in server order
type SuggestionsArrivedEvent struct {
	Generation uint64
	Text       string
	Names      []string
}

func (e SuggestionsArrivedEvent) Type() EventType { return EventSuggestionsArrived }

// OptionsRequestedEvent asks for the category option lists
type OptionsRequestedEvent struct{}

func (e OptionsRequestedEvent) Type() EventType { return EventOptionsRequested }

// OptionsLoadedEvent carries the derived category option lists
type OptionsLoadedEvent struct {
	Options OptionLists
}

func (e OptionsLoadedEvent) Type() EventType { return EventOptionsLoaded }

// ErrorEvent is emitted when a background operation fails outside the page path
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
