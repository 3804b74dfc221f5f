package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// PurgeSessions deletes recency cache snapshots of sessions other than keep
// that have been idle longer than ttl. Called by the cleanup ticker and the
// CLI purge command.
func PurgeSessions(ctx context.Context, purger Purger, keep uuid.UUID, ttl time.Duration, logger *slog.Logger) (int64, error) {
	start := time.Now()
	n, err := purger.PurgeStaleSessions(ctx, keep, ttl)
	dur := time.Since(start).Round(time.Millisecond)

	if err != nil {
		logger.Warn("Cleanup: failed to purge stale cache sessions",
			"duration", dur, "error", err)
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	if n > 0 {
		logger.Info("Cleanup: purged stale cache sessions", "count", n, "duration", dur)
	}
	return n, nil
}
