// Package logging builds the slog loggers used by the command line tools.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Sentinel errors for logger construction.
var (
	// ErrInvalidLevel indicates an unknown level name.
	ErrInvalidLevel = errors.New("logging: unknown level")
	// ErrInvalidFormat indicates an output format other than text or json.
	ErrInvalidFormat = errors.New("logging: unknown format")
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config configures New.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	// Default: info
	Level string

	// Format is text (human-readable) or json.
	// Default: text
	Format string

	// Output receives the records.
	// Default: os.Stderr
	Output io.Writer

	// Service, when set, is attached to every record as "service".
	Service string
}

// ParseLevel resolves a case-insensitive level name. The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// New returns a logger writing cfg.Format records at cfg.Level or above.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		h = slog.NewTextHandler(out, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(out, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}

	logger := slog.New(h)
	if cfg.Service != "" {
		logger = logger.With(slog.String("service", cfg.Service))
	}
	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
