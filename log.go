package aoc

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns a single-line, colourless console logger writing to w.
// Timestamps are dropped so every diagnostic fits on one stderr line.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(out).Level(level)
}
