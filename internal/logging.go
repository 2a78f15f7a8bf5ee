package internal

import (
	"log/slog"
	"os"
)

// LoggerFromString builds the process logger from a level name.
// Unknown names fall back to info rather than failing startup.
func LoggerFromString(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}
