package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger writing to out at the named level.
func newLogger(out io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}
