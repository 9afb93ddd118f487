// Package config reads server settings from the environment, with a .env
// file loaded first when present.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	GeminiAPIKey string

	SurrealURL       string
	SurrealNamespace string
	SurrealDatabase  string
	SurrealUser      string
	SurrealPass      string
}

// Load reads .env (ignored when missing) and then the process environment.
// GEMINI_API_KEY is the only hard requirement; everything else has a local
// development default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getenv("PORT", "8080"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		SurrealURL:       getenv("SURREALDB_URL", "ws://localhost:8000/rpc"),
		SurrealNamespace: getenv("SURREALDB_NAMESPACE", "reelkit"),
		SurrealDatabase:  getenv("SURREALDB_DATABASE", "reelkit"),
		SurrealUser:      getenv("SURREALDB_USER", "root"),
		SurrealPass:      getenv("SURREALDB_PASS", "root"),
	}
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is required")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
