package logger

import (
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

// Init configures the global logger with JSON output. Call early in
// main() before any logging occurs. Level comes from LOG_LEVEL.
func Init() {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	defaultLogger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(defaultLogger)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// Default returns the configured logger, initializing it on first use.
func Default() *slog.Logger {
	if defaultLogger == nil {
		Init()
	}
	return defaultLogger
}
