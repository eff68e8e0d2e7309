package bench

import "fmt"

// Case times a unary function over start, start+increment, ...
type Case[F Float] struct {
	Name      string
	Fn        func(F) F
	Start     F
	Increment F
}

func (c Case[F]) String() string { return c.Name }

func (c Case[F]) Run(h *Harness) error {
	n := h.cfg.InnerIterations
	for range h.cfg.OuterIterations {
		acc, elapsed := unaryLoop(h.cfg.Clock, n, c.Fn, c.Start, c.Increment)
		if err := h.report(c.Name, n, elapsed, float64(acc)); err != nil {
			return err
		}
	}
	return nil
}

// BinaryCase times a function of two independently advancing arguments.
type BinaryCase[F Float] struct {
	Name       string
	Fn         func(x, y F) F
	Start1     F
	Increment1 F
	Start2     F
	Increment2 F
}

func (c BinaryCase[F]) String() string { return c.Name }

func (c BinaryCase[F]) Run(h *Harness) error {
	n := h.cfg.InnerIterations
	for range h.cfg.OuterIterations {
		x, y := c.Start1, c.Start2
		var acc F
		sw := NewStopwatch(h.cfg.Clock)
		sw.Start()
		for range n {
			acc += c.Fn(x, y)
			x += c.Increment1
			y += c.Increment2
		}
		sw.Stop()
		if err := h.report(c.Name, n, sw.Elapsed(), float64(acc)); err != nil {
			return err
		}
	}
	return nil
}

// TernaryCase times a function of three arguments advancing by the same
// increment, such as clamp(value, lower, upper).
type TernaryCase[F Float] struct {
	Name      string
	Fn        func(x, y, z F) F
	Start     [3]F
	Increment F
}

func (c TernaryCase[F]) String() string { return c.Name }

func (c TernaryCase[F]) Run(h *Harness) error {
	n := h.cfg.InnerIterations
	for range h.cfg.OuterIterations {
		x, y, z := c.Start[0], c.Start[1], c.Start[2]
		var acc F
		sw := NewStopwatch(h.cfg.Clock)
		sw.Start()
		for range n {
			acc += c.Fn(x, y, z)
			x += c.Increment
			y += c.Increment
			z += c.Increment
		}
		sw.Stop()
		if err := h.report(c.Name, n, sw.Elapsed(), float64(acc)); err != nil {
			return err
		}
	}
	return nil
}

// SplitCase times a function with two outputs and keeps a separate
// accumulator for each.
type SplitCase[F Float] struct {
	Name      string
	Fn        func(F) (F, F)
	Start     F
	Increment F
}

func (c SplitCase[F]) String() string { return c.Name }

func (c SplitCase[F]) Run(h *Harness) error {
	n := h.cfg.InnerIterations
	for range h.cfg.OuterIterations {
		arg := c.Start
		var acc1, acc2 F
		sw := NewStopwatch(h.cfg.Clock)
		sw.Start()
		for range n {
			a, b := c.Fn(arg)
			acc1 += a
			acc2 += b
			arg += c.Increment
		}
		sw.Stop()
		if err := h.report2(c.Name, n, sw.Elapsed(), float64(acc1), float64(acc2)); err != nil {
			return err
		}
	}
	return nil
}

// ScaleCase sweeps an integer exponent 1..Exponents for every argument
// value. The inner iteration budget is split between the two loops, so
// the argument advances InnerIterations/Exponents times.
type ScaleCase[F Float] struct {
	Name      string
	Fn        func(F, int) F
	Start     F
	Increment F
	Exponents int
}

func (c ScaleCase[F]) String() string { return c.Name }

func (c ScaleCase[F]) Run(h *Harness) error {
	if c.Exponents <= 0 {
		return fmt.Errorf("%w: exponent count must be positive, got %d", ErrInvalidConfig, c.Exponents)
	}
	values := h.cfg.InnerIterations / int64(c.Exponents)
	for range h.cfg.OuterIterations {
		arg := c.Start
		var acc F
		sw := NewStopwatch(h.cfg.Clock)
		sw.Start()
		for range values {
			for e := 1; e <= c.Exponents; e++ {
				acc += c.Fn(arg, e)
			}
			arg += c.Increment
		}
		sw.Stop()
		if err := h.report(c.Name, values*int64(c.Exponents), sw.Elapsed(), float64(acc)); err != nil {
			return err
		}
	}
	return nil
}

// StepCase feeds each result back in as the next argument and
// accumulates the sequence, as with next-up or next-down.
type StepCase[F Float] struct {
	Name  string
	Fn    func(F) F
	Start F
}

func (c StepCase[F]) String() string { return c.Name }

func (c StepCase[F]) Run(h *Harness) error {
	n := h.cfg.InnerIterations
	for range h.cfg.OuterIterations {
		arg := c.Start
		var acc F
		sw := NewStopwatch(h.cfg.Clock)
		sw.Start()
		for range n {
			arg = c.Fn(arg)
			acc += arg
		}
		sw.Stop()
		if err := h.report(c.Name, n, sw.Elapsed(), float64(acc)); err != nil {
			return err
		}
	}
	return nil
}

// PairCase times two implementations of the same operation over the same
// arguments and reports how they compare.
type PairCase[F Float] struct {
	Name      string
	LabelA    string
	A         func(F) F
	LabelB    string
	B         func(F) F
	Start     F
	Increment F
}

func (c PairCase[F]) String() string { return c.Name }

func (c PairCase[F]) Run(h *Harness) error {
	n := h.cfg.InnerIterations
	for range h.cfg.OuterIterations {
		accA, elapsedA := unaryLoop(h.cfg.Clock, n, c.A, c.Start, c.Increment)
		a := Result{Name: c.Name + "/" + c.LabelA, Iterations: n, Elapsed: elapsedA, Accumulated: float64(accA)}
		if err := h.reporter.Report(a); err != nil {
			return err
		}

		accB, elapsedB := unaryLoop(h.cfg.Clock, n, c.B, c.Start, c.Increment)
		b := Result{Name: c.Name + "/" + c.LabelB, Iterations: n, Elapsed: elapsedB, Accumulated: float64(accB)}
		if err := h.reporter.Report(b); err != nil {
			return err
		}

		err := h.reporter.ReportComparison(Comparison{
			Name:   c.Name,
			LabelA: c.LabelA,
			LabelB: c.LabelB,
			A:      a,
			B:      b,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
