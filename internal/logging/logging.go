// Package logging builds the zerolog loggers used across leafco2.
//
// Loggers are carried in context.Context; FromContext returns the logger
// stored there or a disabled logger when none is set.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output targets and formats understood by NewLoggerWithPath.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"

	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes how a logger is built.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// LogPathResult is the outcome of NewLoggerWithPath.
type LogPathResult struct {
	Logger zerolog.Logger

	// UsingFile is true when logs go to FilePath.
	UsingFile bool
	FilePath  string

	// FallbackUsed is true when a file was requested but could not be opened.
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger returns a logger for cfg writing to stderr. Stdout carries
// estimate output and never receives logs.
func NewLogger(cfg Config) zerolog.Logger {
	return newLogger(cfg, os.Stderr)
}

// NewLoggerWithPath builds a logger for cfg. A file output that cannot be
// opened falls back to stderr and reports why.
func NewLoggerWithPath(cfg Config) LogPathResult {
	if cfg.Output != OutputFile || cfg.File == "" {
		return LogPathResult{Logger: NewLogger(cfg)}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
		return LogPathResult{
			Logger:         newLogger(cfg, os.Stderr),
			FallbackUsed:   true,
			FallbackReason: err.Error(),
		}
	}

	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return LogPathResult{
			Logger:         newLogger(cfg, os.Stderr),
			FallbackUsed:   true,
			FallbackReason: err.Error(),
		}
	}

	return LogPathResult{
		Logger:    newLogger(cfg, f),
		UsingFile: true,
		FilePath:  cfg.File,
		file:      f,
	}
}

func newLogger(cfg Config, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !isTTY(w)}
	}

	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// ComponentLogger tags logger with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// PrintLogPathMessage tells the user where logs are being written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user the log file could not be used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file (%s), logging to stderr\n", reason)
}
