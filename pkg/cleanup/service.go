// Package cleanup enforces data retention: expired conversation state,
// expired session locks, old tool invocation records, and idle throttle
// entries are swept on an interval.
package cleanup

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper deletes expired rows of one kind. Implemented by the state
// store and the lock service.
type Sweeper interface {
	DeleteExpired(ctx context.Context) (int, error)
}

// AgeSweeper deletes rows older than a retention window. Implemented by
// the tool invocation store.
type AgeSweeper interface {
	DeleteOlderThan(ctx context.Context, age time.Duration) (int, error)
}

// IdleSweeper drops in-memory entries idle longer than a window.
// Implemented by the throttle.
type IdleSweeper interface {
	Sweep(maxIdle time.Duration) int
}

// Config tunes the sweeper.
type Config struct {
	// Interval between cycles. Zero falls back to the default; RunCycle
	// can always be called directly.
	Interval time.Duration
	// InvocationRetention is how long tool invocation records are kept.
	InvocationRetention time.Duration
	// ThrottleIdle is how long a session's rate limiter may sit unused.
	ThrottleIdle time.Duration
}

// Service runs the retention sweeps. All operations are idempotent and
// safe to run from multiple replicas.
type Service struct {
	cfg         Config
	states      Sweeper
	locks       Sweeper
	invocations AgeSweeper
	throttle    IdleSweeper

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service. Any dependency may be nil; its
// sweep is then skipped.
func NewService(cfg Config, states, locks Sweeper, invocations AgeSweeper, throttle IdleSweeper) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Minute
	}
	if cfg.InvocationRetention <= 0 {
		cfg.InvocationRetention = 7 * 24 * time.Hour
	}
	if cfg.ThrottleIdle <= 0 {
		cfg.ThrottleIdle = time.Hour
	}
	return &Service{
		cfg:         cfg,
		states:      states,
		locks:       locks,
		invocations: invocations,
		throttle:    throttle,
	}
}

// Start launches the background loop. The first cycle runs after one
// interval, not immediately, so startup is not delayed by a sweep.
func (s *Service) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RunCycle(ctx)
			}
		}
	}()
	slog.Info("Cleanup service started", "interval", s.cfg.Interval)
}

// Stop terminates the background loop and waits for a running cycle to
// finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

// RunCycle performs one full sweep. Errors are logged, never fatal: a
// failed sweep retries on the next interval.
func (s *Service) RunCycle(ctx context.Context) {
	if s.states != nil {
		if count, err := s.states.DeleteExpired(ctx); err != nil {
			slog.Error("Failed to sweep expired conversation state", "error", err)
		} else if count > 0 {
			slog.Info("Swept expired conversation state", "count", count)
		}
	}
	if s.locks != nil {
		if count, err := s.locks.DeleteExpired(ctx); err != nil {
			slog.Error("Failed to sweep expired session locks", "error", err)
		} else if count > 0 {
			slog.Info("Swept expired session locks", "count", count)
		}
	}
	if s.invocations != nil {
		if count, err := s.invocations.DeleteOlderThan(ctx, s.cfg.InvocationRetention); err != nil {
			slog.Error("Failed to sweep old tool invocations", "error", err)
		} else if count > 0 {
			slog.Info("Swept old tool invocations", "count", count)
		}
	}
	if s.throttle != nil {
		if count := s.throttle.Sweep(s.cfg.ThrottleIdle); count > 0 {
			slog.Info("Swept idle throttle entries", "count", count)
		}
	}
}
