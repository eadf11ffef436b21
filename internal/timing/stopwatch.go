package timing

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Stopwatch measures time elapsed since it was started.
type Stopwatch struct {
	clock clockwork.Clock
	start time.Time
}

func StartStopwatch(clock clockwork.Clock) *Stopwatch {
	return &Stopwatch{
		clock: clock,
		start: clock.Now(),
	}
}

func (s *Stopwatch) Elapsed() time.Duration {
	return s.clock.Since(s.start)
}
