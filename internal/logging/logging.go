// Package logging configures the process-wide zerolog logger. The terminal
// belongs to the UI, so log lines go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Config selects the level and destination.
type Config struct {
	Level string
	// File is the log path. Empty discards output.
	File string
}

var (
	mu      sync.RWMutex
	base    = zerolog.Nop()
	session = uuid.NewString()
)

// Init installs the base logger. The returned closer releases the log file
// and is safe to call when nothing was opened.
func Init(cfg Config) (io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nopCloser{}, err
	}

	var out io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nopCloser{}, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nopCloser{}, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	SetOutput(out, level)
	return closer, nil
}

// SetOutput installs a base logger writing JSON lines to w.
func SetOutput(w io.Writer, level zerolog.Level) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(w).Level(level).With().
		Timestamp().
		Str("session", session).
		Logger()

	mu.Lock()
	base = logger
	mu.Unlock()
}

// Logger returns the base logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Component returns a child logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return Logger().With().Str("component", name).Logger()
}

// Session is the id stamped on every line of this process.
func Session() string {
	return session
}

// ParseLevel maps a config level name to a zerolog level. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return level, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
