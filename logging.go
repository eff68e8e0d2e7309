package main

import (
	"log/slog"
	"os"
)

// initLogger routes diagnostics to stderr so stdout carries only result
// lines.
func initLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
