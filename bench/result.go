package bench

import (
	"fmt"
	"math"
	"time"
)

// Result is the outcome of one outer iteration of a case.
type Result struct {
	Name         string
	Iterations   int64
	Elapsed      time.Duration
	Accumulated  float64
	Accumulated2 float64
	// Split is set when the case produced two accumulators.
	Split bool
}

func (r Result) String() string {
	if r.Split {
		return fmt.Sprintf("%s: Iterations=%d, Duration=%s, Accumulated 1=%v, Accumulated 2=%v",
			r.Name, r.Iterations, r.Elapsed, r.Accumulated, r.Accumulated2)
	}
	return fmt.Sprintf("%s: Iterations=%d, Duration=%s, Accumulated=%v",
		r.Name, r.Iterations, r.Elapsed, r.Accumulated)
}

// NearlyEqualTolerance is the absolute difference under which two
// accumulators are reported as nearly equal.
const NearlyEqualTolerance = 0.0001

// Comparison relates two implementations of the same operation run over
// the same argument stream.
type Comparison struct {
	Name   string
	LabelA string
	LabelB string
	A      Result
	B      Result
}

// PerformanceDiff is how much faster A ran than B, as a percentage of A's
// duration. Negative means A was slower.
func (c Comparison) PerformanceDiff() float64 {
	if c.A.Elapsed <= 0 {
		return 0
	}
	a := c.A.Elapsed.Seconds()
	return (c.B.Elapsed.Seconds() - a) / a * 100
}

func (c Comparison) Identical() bool {
	return math.Float64bits(c.A.Accumulated) == math.Float64bits(c.B.Accumulated) &&
		math.Float64bits(c.A.Accumulated2) == math.Float64bits(c.B.Accumulated2)
}

func (c Comparison) NearlyEqual() bool {
	return nearlyEqual(c.A.Accumulated, c.B.Accumulated) &&
		nearlyEqual(c.A.Accumulated2, c.B.Accumulated2)
}

func nearlyEqual(a, b float64) bool {
	if a <= b {
		return b-a <= NearlyEqualTolerance
	}
	return a-b <= NearlyEqualTolerance
}

func (c Comparison) String() string {
	diff := c.PerformanceDiff()
	var perf string
	switch {
	case diff > 1.0:
		perf = fmt.Sprintf("%s faster by %.2f %%", c.LabelA, diff)
	case diff < -1.0:
		perf = fmt.Sprintf("%s slower by %.2f %%", c.LabelA, -diff)
	default:
		perf = "equal performance"
	}

	var agreement string
	switch {
	case c.Identical():
		agreement = "accumulators identical"
	case c.NearlyEqual():
		agreement = fmt.Sprintf("accumulators nearly equal (%v, %v)", c.A.Accumulated, c.B.Accumulated)
	default:
		agreement = fmt.Sprintf("accumulators differ (%v, %v)", c.A.Accumulated, c.B.Accumulated)
	}
	return fmt.Sprintf("%s: %s vs %s: %s; %s", c.Name, c.LabelA, c.LabelB, perf, agreement)
}
