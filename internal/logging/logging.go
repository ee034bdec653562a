// Package logging builds the zerolog logger shared by the CLI, the server and
// the shortest-path engine.
package logging

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadpath/internal/config"
)

// Logger is the logger type used across roadpath.
type Logger = zerolog.Logger

// New returns a logger writing to w at cfg.Level (info when unparsable).
// Pretty selects the human-readable console writer.
func New(cfg config.Logging, w io.Writer) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	out := w
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: w}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("service", "roadpath").Logger()
}
