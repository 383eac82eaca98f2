package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ClearStock/clearstock/internal/config"
	"github.com/ClearStock/clearstock/internal/infra"
	"github.com/ClearStock/clearstock/internal/repository"
	"github.com/ClearStock/clearstock/internal/router"
	"github.com/ClearStock/clearstock/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := infra.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Async workers: support-ticket emails via the Redis queue, plus the
	// periodic expired-session sweep.
	mailer := infra.NewMailer(cfg)
	handlers := worker.Handlers{Email: worker.NewEmailWorker(mailer)}
	worker.StartWorkerPool(ctx, rdb, handlers, cfg.WorkerPoolSize)

	sessionRepo := repository.NewSessionRepository(db)
	worker.StartSessionSweep(ctx, worker.SweepCronConfig{
		Sessions: sessionRepo,
		Interval: time.Duration(cfg.SweepIntervalMinutes) * time.Minute,
	})

	// Circuit breaker shared by the speech proxy and the health endpoint.
	transcriptionCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	if cfg.ElevenLabsAPIKey == "" {
		log.Warn().Msg("ELEVENLABS_API_KEY not set — voice transcription disabled")
	}

	r := router.New(cfg, db, rdb, transcriptionCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("ClearStock backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
