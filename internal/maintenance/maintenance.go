// Package maintenance runs periodic background tasks as Go tickers.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Purger removes persisted cache sessions. *db.Pool satisfies it.
type Purger interface {
	PurgeStaleSessions(ctx context.Context, keep uuid.UUID, ttl time.Duration) (int64, error)
}

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	CleanupInterval time.Duration // Stale recency cache sessions
	SessionTTL      time.Duration
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		CleanupInterval: 30 * time.Minute,
		SessionTTL:      24 * time.Hour,
	}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`. keep is the session owned by
// this process; it is never purged.
func Start(ctx context.Context, purger Purger, keep uuid.UUID, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started",
		"cleanup", cfg.CleanupInterval,
		"session_ttl", cfg.SessionTTL)

	if cfg.CleanupInterval > 0 && cfg.SessionTTL > 0 {
		t := time.NewTicker(cfg.CleanupInterval)
		defer t.Stop()
		go runLoop(ctx, t.C, func() {
			_, _ = PurgeSessions(ctx, purger, keep, cfg.SessionTTL, logger)
		})
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}
