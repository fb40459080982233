package handlers

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rickdex/internal/domain"
	"rickdex/internal/eventbus"
	"rickdex/internal/ui/state"
)

// recordingBus captures published events synchronously
type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }
func (b *recordingBus) Close()                                                   {}

func TestStartPublishesInitialRequests(t *testing.T) {
	bus := &recordingBus{}
	h := NewEventHandler(state.New(), bus, nil)

	h.Start()

	require.Len(t, bus.events, 2)
	assert.Equal(t, domain.EventPageRequested, bus.events[0].Type())
	assert.Equal(t, domain.EventOptionsRequested, bus.events[1].Type())
	assert.True(t, h.State().Search.Loading)
}

func TestHandleEventPublishesEffects(t *testing.T) {
	bus := &recordingBus{}
	h := NewEventHandler(state.New(), bus, nil)

	h.HandleEvent(state.QueryChanged{Text: "morty"})

	assert.Equal(t, "morty", h.State().Search.Query)
	types := []domain.EventType{}
	for _, e := range bus.events {
		types = append(types, e.Type())
	}
	assert.ElementsMatch(t, []domain.EventType{domain.EventSuggestionsRequested, domain.EventPageRequested}, types)
}

func TestHandleErrorEventSetsStatus(t *testing.T) {
	bus := &recordingBus{}
	h := NewEventHandler(state.New(), bus, nil)

	h.HandleEvent(domain.ErrorEvent{Message: "Failed to load filter options", Err: errors.New("boom")})

	assert.Equal(t, "Failed to load filter options", h.StatusMessage())
	assert.Empty(t, bus.events)
}
