// Package logging builds the application's zerolog logger. The terminal
// belongs to Bubble Tea, so output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nhle/trade-alerts/internal/model"
)

// New returns a logger for cfg and the closer for its file. An empty
// path disables logging.
func New(cfg model.LogConfig) (zerolog.Logger, io.Closer, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("opening log file %s: %w", cfg.Path, err)
	}

	return NewWriter(f, level), f, nil
}

// NewWriter returns a human-readable logger writing to w.
func NewWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ParseLevel accepts zerolog level names case-insensitively. Empty means
// info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
