// Package infrastructure wires up the diagnostic slog logger.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"dqcli/internal/config"
)

// InitializeLogger builds the logger described by cfg, tags it with a
// fresh run ID, and installs it as the slog default. The caller owns the
// returned close function when file output is configured.
func InitializeLogger(cfg config.LoggingConfig) (*slog.Logger, func(), error) {
	var output io.Writer
	closer := func() {}

	switch cfg.Output {
	case "stdout":
		output = os.Stdout
	case "file":
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
		closer = func() { file.Close() }
	default:
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	logger := slog.New(handler).With(slog.String("run_id", uuid.NewString()))
	slog.SetDefault(logger)
	return logger, closer, nil
}

func parseLevel(level string) slog.Level {
	switch level {
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
