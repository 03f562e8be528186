package logger

import (
	"io"
	"log/slog"
	"os"

	"mindwork/internal/config"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
	config *config.Config
}

// New creates a new logger instance
func New(cfg *config.Config) *Logger {
	var handler slog.Handler

	// Create different handlers based on environment
	if cfg.Server.Environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: true,
		})
	} else {
		// In development, use text format for better readability
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})
	}

	logger := slog.New(handler).With(
		"service", "mindwork-api",
		"environment", cfg.Server.Environment,
	)

	// Set as default logger
	slog.SetDefault(logger)

	return &Logger{
		Logger: logger,
		config: cfg,
	}
}

// SilenceLogger redirects logs to the given writer (useful for testing)
func SilenceLogger(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors
	})
	slog.SetDefault(slog.New(handler))
}
