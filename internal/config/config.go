// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultPath = "data/kinohod.db"
	DefaultPort = "8080"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	DB struct {
		Driver   string `validate:"oneof=sqlite postgres"`
		Path     string `validate:"required_if=Driver sqlite"`
		DSN      string `validate:"required_if=Driver postgres"`
		LogLevel string `validate:"oneof=silent error warn info"`
	}
	LogLevel string `validate:"oneof=debug info warn error"`
	Port     string `validate:"required,numeric"`
	GinMode  string `validate:"omitempty,oneof=debug release test"`
}

// Load reads a .env file if one exists and then builds the config from the
// environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	var cfg Config
	cfg.DB.Driver = strings.ToLower(getenv("DB_DRIVER", DriverSQLite))
	cfg.DB.Path = getenv("DB_PATH", DefaultPath)
	cfg.DB.DSN = os.Getenv("DB_DSN")
	cfg.DB.LogLevel = strings.ToLower(getenv("DB_LOG_LEVEL", "warn"))
	cfg.LogLevel = strings.ToLower(getenv("LOG_LEVEL", "info"))
	cfg.Port = getenv("HTTP_PORT", DefaultPort)
	cfg.GinMode = os.Getenv("GIN_MODE")

	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return cfg, nil
}

func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
