// Package logger builds the zerolog loggers used by the CLI.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Config controls logger construction.
type Config struct {
	Level      string `yaml:"level"`  // debug, info, warn, error, disabled
	Format     string `yaml:"format"` // pretty or json
	TimeFormat string `yaml:"timeFormat,omitempty"`
}

// DefaultConfig logs warnings and above in console format.
func DefaultConfig() Config {
	return Config{Level: "warn", Format: FormatPretty}
}

// New returns a logger writing to w. An unknown level falls back to info.
func New(w io.Writer, cfg Config) zerolog.Logger {
	level := ParseLevel(cfg.Level)

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}

	output := w
	if cfg.Format != FormatJSON {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: timeFormat,
			NoColor:    !isTerminal(w),
		}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return level
}

// ValidLevel reports whether s names a zerolog level.
func ValidLevel(s string) bool {
	_, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	return err == nil && s != ""
}

// fdWriter is satisfied by *os.File.
type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
