package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	// Storage
	DataDir    string
	LedgerFile string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		DataDir:    getEnv("DATA_DIR", "data"),
		LedgerFile: getEnv("LEDGER_FILE", "expenses.csv"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.DataDir) == "" {
		errors = append(errors, "data directory cannot be empty")
	}

	if strings.TrimSpace(c.LedgerFile) == "" {
		errors = append(errors, "ledger file name cannot be empty")
	} else if strings.ContainsAny(c.LedgerFile, `/\`) {
		errors = append(errors, fmt.Sprintf("invalid ledger file name '%s': must be a bare file name, not a path", c.LedgerFile))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// SlogLevel maps the configured level name onto slog's level type. Unknown
// names fall back to info; Validate reports them separately.
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

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
