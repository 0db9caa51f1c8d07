package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewZerolog builds the zerolog logger used by the database layer. Console
// output is always on; file is optional.
func NewZerolog(file io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stdout}}
	if file != nil {
		writers = append(writers, file)
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().Timestamp().
		Logger()
}
