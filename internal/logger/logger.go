package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// Get returns the process-wide logger. The first call decides the level and
// format: debug enables a human-readable console writer.
func Get(debug ...bool) zerolog.Logger {
	once.Do(func() {
		isDebug := len(debug) > 0 && debug[0]
		log = New(os.Stdout, isDebug)
	})
	return log
}

// New builds a logger writing to w. Tests use it with a buffer.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
