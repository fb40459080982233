package ui

import (
	"rickdex/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerDoneMsg is sent when the pager returns control to the UI
type pagerDoneMsg struct {
	err error
}
