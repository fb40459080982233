package fetcher

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rickdex/internal/api"
	"rickdex/internal/domain"
	"rickdex/internal/eventbus"
)

// CharacterSource is the subset of the API client the service needs
type CharacterSource interface {
	SearchCharacters(ctx context.Context, name string, page int) (domain.CharacterPage, error)
	SuggestNames(ctx context.Context, prefix string, limit int) ([]string, error)
	SampleCharacters(ctx context.Context) ([]domain.Character, error)
	Locations(ctx context.Context) ([]domain.Location, error)
}

// Settings tunes request timeouts and result pacing
type Settings struct {
	Timeout         time.Duration
	ResultDelay     time.Duration // wait before a page or a no-match is published
	ErrorDelay      time.Duration // wait before a failure is published
	SuggestionLimit int
}

// Service answers request events from the bus by calling the API and
// publishing the outcome as arrival events
type Service struct {
	bus        eventbus.EventBus
	source     CharacterSource
	settings   Settings
	logger     *zap.Logger
	workerPool chan struct{} // limits concurrent requests
	unsub      []func()
}

// New creates the service and subscribes it to request events
func New(bus eventbus.EventBus, source CharacterSource, settings Settings, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.Timeout <= 0 {
		settings.Timeout = 15 * time.Second
	}
	if settings.SuggestionLimit <= 0 {
		settings.SuggestionLimit = 3
	}

	s := &Service{
		bus:        bus,
		source:     source,
		settings:   settings,
		logger:     logger.Named("fetcher"),
		workerPool: make(chan struct{}, 4),
	}

	s.unsub = append(s.unsub,
		bus.Subscribe(eventbus.EventPageRequested, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.PageRequestedEvent); ok {
				s.bus.Publish(s.FetchPage(context.Background(), event))
			}
		}),
		bus.Subscribe(eventbus.EventSuggestionsRequested, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.SuggestionsRequestedEvent); ok {
				if arrived, ok := s.FetchSuggestions(context.Background(), event); ok {
					s.bus.Publish(arrived)
				}
			}
		}),
		bus.Subscribe(eventbus.EventOptionsRequested, func(e eventbus.DomainEvent) {
			opts, err := s.LoadOptions(context.Background())
			if err != nil {
				s.bus.Publish(eventbus.ErrorEvent{Message: "Failed to load filter options", Err: err})
				return
			}
			s.bus.Publish(eventbus.OptionsLoadedEvent{Options: opts})
		}),
	)

	return s
}

// Close unsubscribes the service from the bus
func (s *Service) Close() {
	for _, u := range s.unsub {
		u()
	}
	s.unsub = nil
}

// FetchPage fetches one page and returns the event describing the outcome.
// A server-side "nothing here" becomes an arrival with no characters.
func (s *Service) FetchPage(ctx context.Context, req domain.PageRequestedEvent) domain.DomainEvent {
	page, err := s.searchCharacters(ctx, req.Query, req.Page)
	switch {
	case err == nil || errors.Is(err, api.ErrNoResults):
		if err != nil {
			s.logger.Debug("no match", zap.String("query", req.Query), zap.Int("page", req.Page))
		}
		s.pause(s.settings.ResultDelay)
		return domain.PageArrivedEvent{
			Generation: req.Generation,
			Query:      req.Query,
			Page:       req.Page,
			Result:     page,
		}
	default:
		s.logger.Warn("page request failed",
			zap.String("query", req.Query),
			zap.Int("page", req.Page),
			zap.Error(err))
		s.pause(s.settings.ErrorDelay)
		return domain.PageFailedEvent{
			Generation: req.Generation,
			Query:      req.Query,
			Page:       req.Page,
			Err:        err,
		}
	}
}

// FetchSuggestions returns the suggestion arrival for req. The second result
// is false when the request failed in transport, in which case the current
// suggestions are left alone.
func (s *Service) FetchSuggestions(ctx context.Context, req domain.SuggestionsRequestedEvent) (domain.SuggestionsArrivedEvent, bool) {
	s.acquire()
	defer s.release()

	ctx, cancel := context.WithTimeout(ctx, s.settings.Timeout)
	defer cancel()

	names, err := s.source.SuggestNames(ctx, req.Text, s.settings.SuggestionLimit)
	if err != nil && !errors.Is(err, api.ErrNoResults) {
		s.logger.Warn("suggestion request failed", zap.String("text", req.Text), zap.Error(err))
		return domain.SuggestionsArrivedEvent{}, false
	}
	return domain.SuggestionsArrivedEvent{
		Generation: req.Generation,
		Text:       req.Text,
		Names:      names,
	}, true
}

// LoadOptions fetches the sample page and the location listing concurrently
// and derives the category option lists from them
func (s *Service) LoadOptions(ctx context.Context) (domain.OptionLists, error) {
	return LoadOptions(ctx, s.source, s.settings.Timeout, s.logger)
}

// LoadOptions fetches the sample page and the location listing concurrently
// and derives the category option lists from them. It needs no bus, so
// one-shot callers use it directly.
func LoadOptions(ctx context.Context, source CharacterSource, timeout time.Duration, logger *zap.Logger) (domain.OptionLists, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var (
		sample    []domain.Character
		locations []domain.Location
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sample, err = source.SampleCharacters(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		locations, err = source.Locations(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("loading filter options failed", zap.Error(err))
		return domain.OptionLists{}, err
	}

	opts := domain.DeriveOptions(sample, locations)
	logger.Info("filter options loaded",
		zap.Int("types", len(opts.Types)),
		zap.Int("genders", len(opts.Genders)),
		zap.Int("statuses", len(opts.Statuses)),
		zap.Int("locations", len(opts.Locations)))
	return opts, nil
}

func (s *Service) searchCharacters(ctx context.Context, name string, page int) (domain.CharacterPage, error) {
	s.acquire()
	defer s.release()

	ctx, cancel := context.WithTimeout(ctx, s.settings.Timeout)
	defer cancel()
	return s.source.SearchCharacters(ctx, name, page)
}

func (s *Service) acquire() { s.workerPool <- struct{}{} }
func (s *Service) release() { <-s.workerPool }

func (s *Service) pause(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
