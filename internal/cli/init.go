// Package cli provides common initialization for the kharcha binary:
// environment loading, logger setup, config validation, and storage
// bootstrap.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"kharcha/internal/config"
	applog "kharcha/internal/log"
	"kharcha/internal/storage"
)

// SetupLogger initializes structured logging at the given level and sets it
// as the process default.
func SetupLogger(level slog.Level) *applog.Logger {
	cfg := applog.DefaultConfig()
	cfg.Level = level
	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitStore builds the CSV ledger store and makes sure the storage location
// exists. Exits the process when storage cannot be prepared.
func InitStore(logger *applog.Logger, cfg *config.Config) *storage.CSVStore {
	store := storage.NewCSVStore(cfg.DataDir, cfg.LedgerFile)
	if err := store.EnsureStorage(); err != nil {
		logger.Error("Failed to initialize ledger storage",
			applog.FieldError, err,
			applog.FieldPath, store.Path())
		os.Exit(1)
	}
	return store
}
