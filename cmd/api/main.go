package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-engine/internal/app"
	"github.com/gokatarajesh/trivia-engine/internal/config"
)

// bootstrapTimeout bounds config parsing and the catalog load, which may go
// over HTTP or to Postgres.
const bootstrapTimeout = 30 * time.Second

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("cmd", "api").Logger()

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load("configs/.env"); err != nil {
			log.Warn().Err(err).Msg("no configs/.env, using process environment")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	cfg, err := config.Load(ctx)
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to load config")
	}

	instance, err := app.New(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Data.Source).Msg("failed to build app")
	}

	if err := instance.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("runtime error")
	}
}
