package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the process-wide JSON logger. It runs before the database
// connects; once it does, main swaps in a fan-out handler that also feeds
// the system_logs table.
func Setup() {
	slog.SetDefault(slog.New(StdoutHandler()))
}

// StdoutHandler builds the JSON stdout handler. The level comes from
// LOG_LEVEL (debug, info, warn, error) and defaults to info.
func StdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
