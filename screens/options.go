package screens

import (
	"time"

	"github.com/rs/zerolog"
)

type options struct {
	log zerolog.Logger
	now func() time.Time
}

// Option configures a screen controller.
type Option func(*options)

// WithLogger sets the controller logger.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.log = l } }

// WithClock overrides time.Now, used to default unset date-times.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

func buildOptions(opts []Option) options {
	o := options{log: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
