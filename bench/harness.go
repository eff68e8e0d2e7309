// Package bench times elementary floating-point operations.
//
// Each case calls its function a fixed number of times in a tight loop
// over an advancing argument and sums the results. The sum is printed
// with the elapsed time so the calls cannot be optimized away, and it
// doubles as a checksum when comparing implementations.
package bench

import (
	"fmt"
	"io"
	"time"
)

type Float interface {
	~float32 | ~float64
}

// Runner is a benchmark case the harness can execute.
type Runner interface {
	fmt.Stringer
	Run(h *Harness) error
}

type Harness struct {
	cfg      Config
	reporter *Reporter
}

// New returns a harness writing result lines to output.
func New(output io.Writer, opts ...Option) (*Harness, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Harness{
		cfg:      cfg,
		reporter: NewReporter(output),
	}, nil
}

func (h *Harness) Config() Config {
	return h.cfg
}

func (h *Harness) Reporter() *Reporter {
	return h.reporter
}

// RunAll runs the cases in order. done, if not nil, is called after each
// case completes.
func (h *Harness) RunAll(runners []Runner, done func(i int, r Runner)) error {
	for i, r := range runners {
		if err := r.Run(h); err != nil {
			return fmt.Errorf("%s: %w", r, err)
		}
		if done != nil {
			done(i, r)
		}
	}
	return nil
}

func (h *Harness) report(name string, iterations int64, elapsed time.Duration, acc float64) error {
	return h.reporter.Report(Result{
		Name:        name,
		Iterations:  iterations,
		Elapsed:     elapsed,
		Accumulated: acc,
	})
}

func (h *Harness) report2(name string, iterations int64, elapsed time.Duration, acc1, acc2 float64) error {
	return h.reporter.Report(Result{
		Name:         name,
		Iterations:   iterations,
		Elapsed:      elapsed,
		Accumulated:  acc1,
		Accumulated2: acc2,
		Split:        true,
	})
}

// unaryLoop is the timed core shared by Case and PairCase.
func unaryLoop[F Float](clock Clock, n int64, fn func(F) F, start, increment F) (F, time.Duration) {
	arg := start
	var acc F
	sw := NewStopwatch(clock)
	sw.Start()
	for range n {
		acc += fn(arg)
		arg += increment
	}
	sw.Stop()
	return acc, sw.Elapsed()
}
