// Package config loads runtime configuration from environment variables.
//
// Config is a plain struct parsed with caarlos0/env — each field declares its
// variable name and default in the struct tag, so the full configuration
// surface is readable in one place. A .env file is honoured when present
// (godotenv), which keeps local development out of the shell profile;
// real environments just set the variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the process needs to start.
type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	DBPath   string `env:"DB_PATH" envDefault:"data/octofit.db"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	// Missing .env is fine — variables may come from the real environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the LOG_LEVEL string onto a slog.Level, defaulting to Info
// for anything unrecognised.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
