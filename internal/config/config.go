// README: Config loader with env defaults for HTTP, Redis, DB, and AI provider settings.
package config

import (
	"os"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN enables the generation quota ledger; empty disables it.
		DSN string
	}
	Redis struct {
		Addr string
	}
	AI struct {
		// Provider selects the completion backend: "openai" (default) or "gemini".
		Provider  string
		OpenAIKey string
		GeminiKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIP_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("TRIP_DB_DSN")
	cfg.Redis.Addr = envOrDefault("TRIP_REDIS_ADDR", "localhost:6379")
	cfg.AI.Provider = envOrDefault("TRIP_AI_PROVIDER", "openai")
	// No env defaults for credentials: a missing key must fail closed at call
	// time, never fall back to a bundled secret.
	cfg.AI.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
