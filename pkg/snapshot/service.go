package snapshot

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// State is the tri-state loading indicator of the snapshot.
type State string

const (
	// StateLoading means no fetch has resolved yet. Consumers decide whether
	// to fail open or closed while the snapshot is indeterminate.
	StateLoading State = "loading"
	// StateReady means the latest fetch resolved; Current may still be nil
	// when the user has no subscription record (implicit free plan).
	StateReady State = "ready"
	// StateError means the latest fetch failed. Consumers should fall back
	// to the least-privilege plan.
	StateError State = "error"
)

// FetchFunc retrieves the user's subscription from the billing subsystem.
// A (nil, nil) return means the user has no subscription record.
type FetchFunc func(ctx context.Context) (*Subscription, error)

// Service is a read-through cache over the billing subsystem's subscription
// record. It is fetched once per session and invalidated after any mutation
// that can change plan or status (payment success, cancellation). The service
// never writes subscription state.
type Service struct {
	fetch  FetchFunc
	cache  Cache
	logger *slog.Logger

	mu    sync.RWMutex
	state State
	sub   *Subscription
	gen   uint64 // incremented per fetch; stale fetches lose
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets a custom logger for fetch lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCache sets a warm-start cache. A hit moves the service to ready before
// the first fetch resolves; cache errors are ignored.
func WithCache(cache Cache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// NewService creates a snapshot Service. Panics if fetch is nil to fail fast
// during initialization. The service starts in StateLoading; call Refresh to
// resolve it.
func NewService(fetch FetchFunc, opts ...Option) *Service {
	if fetch == nil {
		panic("snapshot: FetchFunc is required")
	}

	s := &Service{
		fetch:  fetch,
		logger: slog.New(slog.DiscardHandler),
		state:  StateLoading,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Current returns the latest resolved subscription and the snapshot state.
// The subscription is nil while loading, after an error, and for users with
// no subscription record.
func (s *Service) Current() (*Subscription, State) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sub, s.state
}

// Refresh fetches the subscription record. Concurrent refreshes follow
// last-fetch-wins: a fetch that was superseded by a newer one discards its
// result instead of overwriting the fresher value.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	if s.cache != nil {
		if sub, ok, err := s.cache.Get(ctx); err == nil && ok {
			s.resolve(gen, sub, StateReady)
		}
	}

	sub, err := s.fetch(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "subscription fetch failed", slog.Any("error", err))
		s.resolve(gen, nil, StateError)
		return errors.Join(ErrFetchFailed, err)
	}

	s.resolve(gen, sub, StateReady)

	if s.cache != nil {
		if err := s.cache.Set(ctx, sub); err != nil {
			s.logger.WarnContext(ctx, "subscription cache write failed", slog.Any("error", err))
		}
	}

	s.logger.DebugContext(ctx, "subscription snapshot refreshed",
		slog.String("plan", sub.Plan()),
		slog.Bool("has_record", sub != nil),
	)
	return nil
}

// Invalidate drops the cached record and re-fetches. Call it after any
// mutation that can change plan or status; until the refetch resolves, the
// previous value remains visible (eventual consistency, bounded by one
// round trip).
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache != nil {
		if err := s.cache.Delete(ctx); err != nil {
			s.logger.WarnContext(ctx, "subscription cache invalidation failed", slog.Any("error", err))
		}
	}
	return s.Refresh(ctx)
}

// resolve installs a fetch result unless a newer fetch has started since.
func (s *Service) resolve(gen uint64, sub *Subscription, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.gen {
		return // superseded, discard
	}
	s.sub = sub
	s.state = state
}
