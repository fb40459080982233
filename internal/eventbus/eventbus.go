package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"rickdex/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventPageRequested        = domain.EventPageRequested
	EventPageArrived          = domain.EventPageArrived
	EventPageFailed           = domain.EventPageFailed
	EventSuggestionsRequested = domain.EventSuggestionsRequested
	EventSuggestionsArrived   = domain.EventSuggestionsArrived
	EventOptionsRequested     = domain.EventOptionsRequested
	EventOptionsLoaded        = domain.EventOptionsLoaded
	EventError                = domain.EventError
)

// Re-export domain event types
type PageRequestedEvent = domain.PageRequestedEvent
type PageArrivedEvent = domain.PageArrivedEvent
type PageFailedEvent = domain.PageFailedEvent
type SuggestionsRequestedEvent = domain.SuggestionsRequestedEvent
type SuggestionsArrivedEvent = domain.SuggestionsArrivedEvent
type OptionsRequestedEvent = domain.OptionsRequestedEvent
type OptionsLoadedEvent = domain.OptionsLoadedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// New creates a new event bus
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
		logger:    logger.Named("eventbus"),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for delivery to all subscribers
func (b *bus) Publish(event DomainEvent) {
	b.logger.Debug("publish", zap.String("event", string(event.Type())))

	select {
	case b.eventChan <- event:
	default:
		b.logger.Warn("event channel full, dropping event", zap.String("event", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and discards undelivered events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			// Handlers run concurrently, so delivery order across events is not guaranteed
			for _, s := range subs {
				go func(h EventHandler, ev DomainEvent) {
					defer func() {
						if r := recover(); r != nil {
							b.logger.Error("event handler panic",
								zap.String("event", string(ev.Type())),
								zap.Any("panic", r),
								zap.ByteString("stack", debug.Stack()))
						}
					}()
					h(ev)
				}(s.handler, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
