package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/khmercontent/reelkit/internal/config"
	"github.com/khmercontent/reelkit/internal/generator"
	"github.com/khmercontent/reelkit/internal/server"
	"github.com/khmercontent/reelkit/internal/store"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}

	db, err := store.Open(store.Config{
		URL:       cfg.SurrealURL,
		Namespace: cfg.SurrealNamespace,
		Database:  cfg.SurrealDatabase,
		User:      cfg.SurrealUser,
		Pass:      cfg.SurrealPass,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to surrealdb")
	}
	defer db.Close()

	gen, err := generator.NewClient(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("creating gemini client")
	}
	defer gen.Close()

	router := server.New(db, gen, log).Router()

	log.Info().Str("port", cfg.Port).Msg("reelkit server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
