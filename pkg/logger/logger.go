package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	})
	Log = slog.New(handler)
	slog.SetDefault(Log)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
