package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Ponloe/kinohod-store/internal/api"
	"github.com/Ponloe/kinohod-store/internal/config"
	"github.com/Ponloe/kinohod-store/internal/database"
	"github.com/Ponloe/kinohod-store/internal/listings"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// run owns the store for the lifetime of the server and closes it on every
// return path.
func run(cfg config.Config, logger *slog.Logger) error {
	db, err := database.Open(cfg, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer database.Close(db)

	registry := listings.NewRegistry()

	// create missing tables before serving
	if err := database.Migrate(context.Background(), db, registry, logger); err != nil {
		return fmt.Errorf("schema initialization: %w", err)
	}

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(db, registry, logger))

	logger.Info("listening", "port", cfg.Port)
	return r.Run(":" + cfg.Port)
}
