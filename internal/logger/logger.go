// Package logger provides configured zerolog loggers.
package logger

import (
	"io"
	"os"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

type stackTracer interface{ StackTrace() pkgerrors.StackTrace }

var installOnce sync.Once

// installMarshalers makes zerolog render github.com/pkg/errors stacks.
// Call sites use .Stack() on error events to include them.
func installMarshalers() {
	installOnce.Do(func() {
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			if _, ok := err.(stackTracer); !ok {
				err = pkgerrors.WithStack(err)
			}
			return zpkgerrors.MarshalStack(err)
		}
	})
}

// New returns a JSON logger on stdout tagged with serviceName.
func New(serviceName string) zerolog.Logger {
	return NewWithWriter(os.Stdout, serviceName, zerolog.InfoLevel)
}

// NewWithWriter is New with an explicit sink and level.
func NewWithWriter(w io.Writer, serviceName string, level zerolog.Level) zerolog.Logger {
	installMarshalers()
	return zerolog.New(w).Level(level).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// Console returns a human readable logger for command line tools.
func Console(w io.Writer, level zerolog.Level) zerolog.Logger {
	installMarshalers()
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Logger()
}
