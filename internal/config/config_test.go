package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid default-shaped config",
			config: Config{
				DataDir:    "data",
				LedgerFile: "expenses.csv",
				LogLevel:   "info",
			},
			wantErr: false,
		},
		{
			name: "empty data directory",
			config: Config{
				DataDir:    "  ",
				LedgerFile: "expenses.csv",
				LogLevel:   "info",
			},
			wantErr:     true,
			errorString: "data directory cannot be empty",
		},
		{
			name: "empty ledger file name",
			config: Config{
				DataDir:    "data",
				LedgerFile: "",
				LogLevel:   "info",
			},
			wantErr:     true,
			errorString: "ledger file name cannot be empty",
		},
		{
			name: "ledger file name with path separator",
			config: Config{
				DataDir:    "data",
				LedgerFile: "nested/expenses.csv",
				LogLevel:   "info",
			},
			wantErr:     true,
			errorString: "must be a bare file name, not a path",
		},
		{
			name: "invalid log level",
			config: Config{
				DataDir:    "data",
				LedgerFile: "expenses.csv",
				LogLevel:   "verbose",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name: "multiple problems reported together",
			config: Config{
				DataDir:    "",
				LedgerFile: "",
				LogLevel:   "nope",
			},
			wantErr:     true,
			errorString: "configuration validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.errorString)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATA_DIR", "")
	t.Setenv("LEDGER_FILE", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %q, want data", cfg.DataDir)
	}
	if cfg.LedgerFile != "expenses.csv" {
		t.Errorf("LedgerFile = %q, want expenses.csv", cfg.LedgerFile)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/ledgers")
	t.Setenv("LEDGER_FILE", "household.csv")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.DataDir != "/tmp/ledgers" {
		t.Errorf("DataDir = %q, want /tmp/ledgers", cfg.DataDir)
	}
	if cfg.LedgerFile != "household.csv" {
		t.Errorf("LedgerFile = %q, want household.csv", cfg.LedgerFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{LogLevel: tt.level}
			if got := cfg.SlogLevel(); got != tt.want {
				t.Errorf("SlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
