package log

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	SetOutput(os.Stderr, zerolog.InfoLevel)
}

// SetOutput replaces the process logger. Console formatting is used when w
// is a terminal-like writer such as os.Stderr.
func SetOutput(w io.Writer, level zerolog.Level) {
	if w == os.Stderr || w == os.Stdout {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	l := zerolog.New(w).Level(level).With().Timestamp().Logger()
	logger.Store(&l)
}

// Logger returns the process logger.
func Logger() *zerolog.Logger {
	return logger.Load()
}

// Fatal logs v at error level and exits.
func Fatal(v ...interface{}) {
	Logger().Error().Msg(fmt.Sprint(v...))
	os.Exit(1)
}
