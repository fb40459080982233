package handlers

import (
	"go.uber.org/zap"

	"rickdex/internal/eventbus"
	"rickdex/internal/ui/state"
)

// EventHandler feeds events through the state transition and publishes the
// request events it returns
type EventHandler struct {
	state         state.State
	bus           eventbus.EventBus
	logger        *zap.Logger
	statusMessage string
}

// NewEventHandler creates a new event handler around the initial snapshot
func NewEventHandler(initial state.State, bus eventbus.EventBus, logger *zap.Logger) *EventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHandler{
		state:  initial,
		bus:    bus,
		logger: logger.Named("ui"),
	}
}

// Start publishes the requests of a freshly opened browser
func (h *EventHandler) Start() {
	var effects []eventbus.DomainEvent
	h.state, effects = state.Start(h.state)
	h.publish(effects)
}

// HandleEvent applies one UI or arrival event
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) {
	if e, ok := event.(eventbus.ErrorEvent); ok {
		h.logger.Warn("background error", zap.String("message", e.Message), zap.Error(e.Err))
		h.statusMessage = e.Message
		return
	}

	var effects []eventbus.DomainEvent
	h.state, effects = state.Transition(h.state, event)
	h.publish(effects)
}

// State returns the current snapshot
func (h *EventHandler) State() state.State {
	return h.state
}

// StatusMessage returns the last background error message, if any
func (h *EventHandler) StatusMessage() string {
	return h.statusMessage
}

func (h *EventHandler) publish(effects []eventbus.DomainEvent) {
	for _, e := range effects {
		if h.bus == nil {
			continue
		}
		h.bus.Publish(e)
	}
}
