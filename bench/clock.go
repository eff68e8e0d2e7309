package bench

import "time"

// Clock is a monotonic time source. Now returns the offset from an
// arbitrary fixed point; only differences between readings are meaningful.
type Clock interface {
	Now() time.Duration
}

// SystemClock returns the platform monotonic clock.
func SystemClock() Clock {
	return monoClock{}
}

// epochClock reads Go's own monotonic clock. It is the fallback on
// platforms without clock_gettime and the reference in benchmarks.
type epochClock struct{}

var epoch = time.Now()

func (epochClock) Now() time.Duration {
	return time.Since(epoch)
}

// Stopwatch measures elapsed time between Start and Stop.
type Stopwatch struct {
	clock   Clock
	start   time.Duration
	elapsed time.Duration
	running bool
}

func NewStopwatch(clock Clock) *Stopwatch {
	return &Stopwatch{clock: clock}
}

func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.start = s.clock.Now()
	s.running = true
}

func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.elapsed += s.clock.Now() - s.start
	s.running = false
}

// Restart clears the elapsed time and starts measuring again.
func (s *Stopwatch) Restart() {
	s.elapsed = 0
	s.running = false
	s.Start()
}

func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.elapsed + s.clock.Now() - s.start
	}
	return s.elapsed
}
