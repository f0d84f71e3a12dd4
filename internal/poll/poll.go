// Package poll keeps the orchestrator's game cache warm. A ticker re-fetches
// today's slate per league so page loads during live windows hit the cache
// instead of stacking up behind provider rate limits.
package poll

import (
	"context"
	"log/slog"
	"time"

	"github.com/albapepper/courtside/internal/orchestrator"
)

// Start runs the refresh loop until ctx is cancelled. Interval should be at
// or above the today-games cache TTL; shorter intervals just re-read the
// cache.
func Start(ctx context.Context, orc *orchestrator.Orchestrator, interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Live-game poller started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Live-game poller stopped")
			return
		case <-ticker.C:
			refresh(ctx, orc, logger)
		}
	}
}

func refresh(ctx context.Context, orc *orchestrator.Orchestrator, logger *slog.Logger) {
	start := time.Now()
	live, err := orc.LiveGames(ctx)
	if err != nil {
		logger.Warn("poll refresh failed", "error", err)
		return
	}
	logger.Debug("poll refresh complete",
		"live_games", len(live),
		"duration", time.Since(start).Round(time.Millisecond))
}
