package worker

// sweep_cron.go
// Background goroutine that periodically deletes expired sessions. Stale
// rows are also removed lazily on access; the sweep catches sessions that
// are never presented again.

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ClearStock/clearstock/internal/repository"
)

// SweepCronConfig holds the dependencies for the session sweep goroutine.
type SweepCronConfig struct {
	Sessions repository.SessionRepository
	Interval time.Duration
}

// StartSessionSweep launches a background goroutine that ticks on the
// configured interval and purges expired session rows. It respects the
// context for graceful shutdown.
func StartSessionSweep(ctx context.Context, cfg SweepCronConfig) {
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("session_sweep: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("session_sweep: shutting down")
				return
			case <-ticker.C:
				sweepOnce(ctx, cfg.Sessions)
			}
		}
	}()
}

func sweepOnce(ctx context.Context, sessions repository.SessionRepository) {
	deleted, err := sessions.DeleteExpired(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("session_sweep: failed to delete expired sessions")
		return
	}
	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Msg("session_sweep: purged expired sessions")
	}
}
