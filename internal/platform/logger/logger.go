// Package logger provides a configured zerolog logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Options selects the logger's output encoding and verbosity.
type Options struct {
	Format string // "console" or "json"
	Debug  bool
	Out    io.Writer // defaults to os.Stderr
}

// New returns a zerolog.Logger for the given service. Diagnostics always go to
// stderr by default so stdout stays reserved for command results.
func New(serviceName string, opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if opts.Format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    true,
		}
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).Level(level).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
