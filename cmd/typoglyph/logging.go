package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the CLI's stderr console logger. The library never logs;
// only the command layer does, and only at warn level unless --verbose
// raises it to debug.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}).Level(level).With().Timestamp().Logger()
}
