package main

import (
	"log/slog"
	"os"

	"github.com/finprime/finprime-backend/internal/config"
	"github.com/finprime/finprime-backend/internal/store"
	"github.com/finprime/finprime-backend/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

// Applies pending schema migrations and exits. Useful in CI and for
// environments where the API should not migrate on boot.
func main() {
	cfg := config.New()
	log := logger.New(cfg.LogLevel, logger.NewJSONHandler)

	err := store.RunMigrations(cfg.DatabaseURL)
	exitOnError("migrations failed", err, log)

	log.Info("migrations applied")
}
