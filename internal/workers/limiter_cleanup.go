package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
)

// LimiterCleanup periodically evicts idle rate limiter buckets so that the
// per-IP map does not grow without bound.
type LimiterCleanup struct {
	target   Evicter
	interval time.Duration
	idleTTL  time.Duration
	logger   *logger.Logger
}

func NewLimiterCleanup(target Evicter, interval, idleTTL time.Duration, log *logger.Logger) *LimiterCleanup {
	return &LimiterCleanup{
		target:   target,
		interval: interval,
		idleTTL:  idleTTL,
		logger:   log,
	}
}

func (c *LimiterCleanup) Run(ctx context.Context) {
	if c.interval <= 0 {
		c.logger.Warn().Msg("limiter cleanup disabled: non-positive interval")
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug().Msg("limiter cleanup stopped")
			return
		case <-ticker.C:
			if removed := c.target.Evict(c.idleTTL); removed > 0 {
				c.logger.Debug().Int("removed", removed).Msg("evicted idle rate limiter entries")
			}
		}
	}
}
