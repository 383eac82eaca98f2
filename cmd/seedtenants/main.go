// Command seedtenants inserts the fixture restaurants used in pilots.
// Existing PINs are left untouched, so it is safe to re-run.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ClearStock/clearstock/internal/config"
	"github.com/ClearStock/clearstock/internal/infra"
	"github.com/ClearStock/clearstock/internal/model"
	"github.com/ClearStock/clearstock/internal/repository"
	"github.com/ClearStock/clearstock/internal/service"
)

// Pilot fixtures: legacy four-digit PINs mapped to single-letter tenant codes.
var fixtures = []struct {
	pin  string
	code string
}{
	{"1111", "A"},
	{"2222", "B"},
	{"3333", "C"},
	{"4921", "D"},
	{"5421", "E"},
	{"6531", "F"},
	{"7641", "G"},
	{"8751", "H"},
	{"9861", "I"},
	{"1357", "J"},
}

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
	if err := infra.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	restaurants := repository.NewRestaurantRepository(db)
	ctx := context.Background()

	for _, f := range fixtures {
		pin, ok := service.NormalizePIN(f.pin)
		if !ok {
			log.Fatal().Str("pin", f.pin).Msg("invalid fixture PIN")
		}
		code := f.code
		restaurant := &model.Restaurant{PIN: pin, TenantCode: &code}
		if err := restaurants.Create(ctx, restaurant); err != nil {
			log.Error().Err(err).Str("code", f.code).Msg("failed to seed restaurant")
			continue
		}
		log.Info().Str("code", f.code).Str("pin", pin).Msg("restaurant seeded")
	}
}
