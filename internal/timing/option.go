package timing

import (
	"github.com/jonboulle/clockwork"
	"github.com/juju/loggo"
)

type Option func(h *Harness)

// WithClock replaces the clock used to time each run.
// Without this option, the harness uses the real clock.
func WithClock(clock clockwork.Clock) Option {
	return func(h *Harness) {
		h.clock = clock
	}
}

func WithLogger(logger loggo.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}
