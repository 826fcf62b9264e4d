package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// HandlerFactory builds the slog.Handler used by New for the resolved level.
type HandlerFactory func(level slog.Level) slog.Handler

func New(level string, handler HandlerFactory) *slog.Logger {
	h := handler(ParseLevel(level))
	return slog.New(h)
}

// ForFormat picks the handler factory for a LOG_FORMAT value.
// Anything other than "text" gets the Cloud Run JSON handler.
func ForFormat(format string) HandlerFactory {
	if strings.EqualFold(format, "text") {
		return NewConsoleHandler
	}
	return NewCloudRunHandler
}

// NewConsoleHandler writes human readable lines to stderr for local runs.
func NewConsoleHandler(level slog.Level) slog.Handler {
	return newTextHandler(os.Stderr, level)
}

func newTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// ---- Helpers ----
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
