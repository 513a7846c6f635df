package bootstrap

import (
	"context"
	"time"

	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/service"
)

// RunScheduler drives the refresh cycle on a fixed interval. The services
// themselves own no timers; this loop is the only place cadence lives.
func RunScheduler(ctx context.Context, refresher *service.RefreshService, interval time.Duration, log domain.Logger) error {
	if err := refresher.RefreshPrices(ctx); err != nil {
		log.Warn("initial refresh failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := refresher.RefreshPrices(ctx); err != nil {
				log.Warn("scheduled refresh failed", "error", err)
			}
		}
	}
}
