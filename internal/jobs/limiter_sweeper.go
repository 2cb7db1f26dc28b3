package jobs

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper evicts idle clients from an in-memory rate limiter.
type Sweeper interface {
	Sweep(now time.Time) int
}

// LimiterSweeper periodically drops clients whose window has emptied so the
// limiter's client map does not grow without bound.
type LimiterSweeper struct {
	limiter  Sweeper
	interval time.Duration
	now      func() time.Time
}

// NewLimiterSweeper creates a new limiter sweeper.
func NewLimiterSweeper(limiter Sweeper, interval time.Duration) *LimiterSweeper {
	return &LimiterSweeper{
		limiter:  limiter,
		interval: interval,
		now:      time.Now,
	}
}

// Start begins the background sweep loop. It returns when ctx is done.
func (s *LimiterSweeper) Start(ctx context.Context) {
	slog.Info("limiter sweeper started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("limiter sweeper stopped")
			return
		case <-ticker.C:
			s.sweepOnce()
		}
	}
}

func (s *LimiterSweeper) sweepOnce() int {
	removed := s.limiter.Sweep(s.now())
	if removed > 0 {
		slog.Debug("limiter sweeper evicted idle clients", "count", removed)
	}
	return removed
}
