// Package logging wires zerolog for every palette mode.
//
// Host mode speaks the native messaging protocol on stdout, so loggers built
// here write to stderr or to a rotating file, never to stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	// LogFileName is the base name of the rotating log file.
	LogFileName = "palette.log"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// FileConfig controls the rotating file sink.
type FileConfig struct {
	Enabled       bool
	Dir           string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	return zerolog.New(formatWriter(out, cfg)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

func formatWriter(out io.Writer, cfg Config) io.Writer {
	if cfg.Format == FormatJSON {
		return out
	}
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat,
	}
}

// ParseLevel maps a level name to a zerolog level.
// Unknown names return an error and info level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	}
	return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", level)
}

// NewFromConfigValues creates a stderr logger from raw config strings.
// Invalid values fall back to the defaults.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	if lvl, err := ParseLevel(level); err == nil {
		cfg.Level = lvl
	}
	if format == FormatJSON || format == FormatConsole {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// PALETTE_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// PALETTE_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("PALETTE_LOG_LEVEL"), os.Getenv("PALETTE_LOG_FORMAT"))
}

// NewWithFile creates a logger that writes JSON lines to a rotating file in
// fc.Dir, and optionally mirrors cfg-formatted output to stderr.
// The returned cleanup closes the file.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}
	if !fc.Enabled {
		return New(cfg), noop, nil
	}

	if err := os.MkdirAll(fc.Dir, 0o755); err != nil {
		return New(cfg), noop, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator, err := NewLogRotator(filepath.Join(fc.Dir, LogFileName), fc.rotateOptions())
	if err != nil {
		return New(cfg), noop, fmt.Errorf("failed to create log rotator: %w", err)
	}

	writers := []io.Writer{rotator}
	if fc.WriteToStderr {
		out := cfg.Output
		if out == nil {
			out = os.Stderr
		}
		writers = append(writers, formatWriter(out, cfg))
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}
