package main

import (
	"context"
	"log/slog"
	"os"

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

	db, err := database.Open(cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	err = database.Migrate(context.Background(), db, listings.NewRegistry(), logger)
	if cerr := database.Close(db); cerr != nil {
		logger.Warn("failed to close database", "error", cerr)
	}
	if err != nil {
		logger.Error("schema initialization failed", "error", err)
		os.Exit(1)
	}
}
