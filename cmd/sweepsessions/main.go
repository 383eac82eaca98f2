// Command sweepsessions deletes all expired session rows once and exits.
// The server runs the same sweep on a timer; this is for cron or manual use.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ClearStock/clearstock/internal/config"
	"github.com/ClearStock/clearstock/internal/infra"
	"github.com/ClearStock/clearstock/internal/repository"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	sessions := repository.NewSessionRepository(db)
	deleted, err := sessions.DeleteExpired(context.Background(), time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to delete expired sessions")
	}
	log.Info().Int64("deleted", deleted).Msg("expired sessions purged")
}
