package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"rickdex/internal/eventbus"
	"rickdex/internal/fetcher"
	"rickdex/internal/ui"
)

// runTUI wires the bus, the fetch service and the Bubble Tea program
func runTUI(ctx context.Context, e *env) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New(e.logger)
	defer bus.Close()

	svc := fetcher.New(bus, e.client, fetcher.Settings{
		Timeout:         e.cfg.API.Timeout(),
		ResultDelay:     e.cfg.UI.ResultDelay(),
		ErrorDelay:      e.cfg.UI.ErrorDelay(),
		SuggestionLimit: e.cfg.UI.SuggestionLimit,
	}, e.logger)
	defer svc.Close()

	model := ui.NewModel(bus, e.cfg, e.logger)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward arrivals to the update loop
	for _, et := range []eventbus.EventType{
		eventbus.EventPageArrived,
		eventbus.EventPageFailed,
		eventbus.EventSuggestionsArrived,
		eventbus.EventOptionsLoaded,
		eventbus.EventError,
	} {
		bus.Subscribe(et, func(ev eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: ev})
		})
	}

	e.logger.Info("starting browser", zap.String("api", e.cfg.API.BaseURL))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run browser: %w", err)
	}
	e.logger.Info("browser closed")
	return nil
}
