package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler discards everything; tests use it to keep output quiet.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
}
