package main

import (
	"context"
	"log/slog"
	"os"

	"kharcha/internal/cli"
	"kharcha/internal/console"
	"kharcha/internal/services"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(slog.LevelInfo)
	cfg := cli.LoadAndValidateConfig(logger)
	if level := cfg.SlogLevel(); level != slog.LevelInfo {
		logger = cli.SetupLogger(level)
	}

	store := cli.InitStore(logger, cfg)
	recorder := services.NewRecorder(store)

	logger.Info("Starting kharcha", "data_dir", cfg.DataDir, "ledger_file", cfg.LedgerFile)

	shell := console.New(os.Stdin, os.Stdout, store, recorder)
	if err := shell.Run(context.Background()); err != nil {
		logger.Error("Session ended with error", "error", err)
		os.Exit(1)
	}
}
