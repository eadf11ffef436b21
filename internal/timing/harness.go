// Package timing measures how deque implementations scale with their size.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/olekukonko/tablewriter"

	"github.com/ngicks/deque"
)

var logger = loggo.GetLogger("dequebench.timing")

// DefaultSizes doubles from 1000 up to 128000.
var DefaultSizes = []int{1000, 2000, 4000, 8000, 16000, 32000, 64000, 128000}

// Sample is a single timed run.
type Sample struct {
	N       int
	Elapsed time.Duration
	Ops     int
}

func (s Sample) MicrosPerOp() float64 {
	if s.Ops == 0 {
		return 0
	}
	return float64(s.Elapsed) / float64(time.Microsecond) / float64(s.Ops)
}

type Harness struct {
	clock  clockwork.Clock
	logger loggo.Logger
}

func New(opts ...Option) *Harness {
	h := &Harness{
		clock:  clockwork.NewRealClock(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Measure runs op n times on a fresh deque returned from newDeque.
func (h *Harness) Measure(op Op, newDeque func() deque.Deque[int], n int) Sample {
	d := newDeque()

	var sw *Stopwatch
	switch op {
	case OpAddFirst:
		sw = StartStopwatch(h.clock)
		for i := 0; i < n; i++ {
			d.AddFirst(i)
		}
	case OpGet:
		for i := 0; i < n; i++ {
			d.AddLast(i)
		}
		sw = StartStopwatch(h.clock)
		for i := 0; i < n; i++ {
			_, _ = d.Get(i)
		}
	default:
		sw = StartStopwatch(h.clock)
		for i := 0; i < n; i++ {
			d.AddLast(i)
		}
	}

	s := Sample{N: n, Elapsed: sw.Elapsed(), Ops: n}
	h.logger.Debugf("%s: n = %d, elapsed = %s", op, n, s.Elapsed)
	return s
}

// Run calls Measure for each of sizes in order.
// sizes must not be empty and every size must be positive.
func (h *Harness) Run(op Op, newDeque func() deque.Deque[int], sizes []int) ([]Sample, error) {
	if len(sizes) == 0 {
		return nil, errors.NotValidf("sizes")
	}
	for _, n := range sizes {
		if n <= 0 {
			return nil, errors.NotValidf("size %d", n)
		}
	}
	samples := make([]Sample, 0, len(sizes))
	for _, n := range sizes {
		samples = append(samples, h.Measure(op, newDeque, n))
	}
	return samples, nil
}

// WriteTable writes samples as a table of N, time in seconds, op count and microseconds per op.
func WriteTable(w io.Writer, samples []Sample) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"N", "time (s)", "# ops", "microsec/op"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(false)
	for _, s := range samples {
		table.Append([]string{
			fmt.Sprintf("%d", s.N),
			fmt.Sprintf("%.2f", s.Elapsed.Seconds()),
			fmt.Sprintf("%d", s.Ops),
			fmt.Sprintf("%.2f", s.MicrosPerOp()),
		})
	}
	table.Render()
}
