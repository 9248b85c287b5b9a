// Package logger provides structured logging for the solid CLI.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/sghaida/solid/config"
)

// ParseLevel maps a configured level name to a slog.Level. ok is false for
// unknown names, in which case info is returned.
func ParseLevel(name string) (level slog.Level, ok bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup builds a text or JSON logger writing to w, based on cfg, and installs it
// as the slog default so the demo packages' slog calls end up there too.
func Setup(cfg config.Config, w io.Writer) *slog.Logger {
	level, ok := ParseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	slog.SetDefault(logger)
	return logger
}
