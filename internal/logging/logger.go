package logging

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Logger = slog.New(handler)
}

// WithComponent returns a logger scoped to one gateway component.
func WithComponent(component string) *slog.Logger {
	return Logger.With("component", component)
}
