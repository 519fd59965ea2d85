// Package log builds the application slog.Logger from configuration.
package log

import (
	"log/slog"
	"os"
	"strings"

	"clinic/config"
)

// NewLogger creates a slog.Logger according to the log configuration.
// Pretty output uses the text handler, otherwise JSON.
func NewLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.Env.Log.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Env.Debug,
	}

	var handler slog.Handler
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With(
		slog.String("service", cfg.Env.ServiceName),
		slog.String("env", cfg.Env.Env),
	)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
