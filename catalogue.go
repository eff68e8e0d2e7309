package main

import (
	"math"

	"github.com/meko-christian/algo-approx"

	"mathperf/bench"
)

const (
	defaultStart     = math.Pi
	defaultIncrement = 0.000001

	trigStart = math.Pi / 100

	// Inverse trigonometric functions stay inside their domain for a
	// billion steps.
	inverseTrigStart     = 0.9 / 1_000_000_000.0
	inverseTrigIncrement = 1.0 / 1_000_000_000.0

	expStart       = 0.9
	hypotStart     = 0.999
	fineIncrement  = 0.000000001
	nextAfterLimit = 1_000_000_000.0
	scaleExponents = 100
	lerpFactor     = 0.5
)

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func identity(x float64) float64 { return x }

func isNaN(x float64) float64 { return boolToFloat(math.IsNaN(x)) }
func isInf(x float64) float64 { return boolToFloat(math.IsInf(x, 0)) }
func signBit(x float64) float64 { return boolToFloat(math.Signbit(x)) }

func frexp(x float64) (float64, float64) {
	frac, exp := math.Frexp(x)
	return frac, float64(exp)
}

// modf returns the fractional part first, matching frexp's order of
// (mantissa-like part, remaining part).
func modf(x float64) (float64, float64) {
	ipart, frac := math.Modf(x)
	return frac, ipart
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func lerp(a, b float64) float64 {
	return a + lerpFactor*(b-a)
}

func nextUp(x float64) float64 { return math.Nextafter(x, math.Inf(1)) }
func nextDown(x float64) float64 { return math.Nextafter(x, math.Inf(-1)) }

func nextAfter(x float64) float64 { return math.Nextafter(x, nextAfterLimit) }

func fastExp(x float64) float64 { return approx.FastExp(x) }
func fastLog(x float64) float64 { return approx.FastLog(x) }
func fastSqrt(x float64) float64 { return approx.FastSqrt(x) }

// unary32 runs a float64 function at single precision.
func unary32(fn func(float64) float64) func(float32) float32 {
	return func(x float32) float32 { return float32(fn(float64(x))) }
}

func unary(name string, fn func(float64) float64) bench.Case[float64] {
	return bench.Case[float64]{Name: name, Fn: fn, Start: defaultStart, Increment: defaultIncrement}
}

func unary32Case(name string, fn func(float64) float64, start float32) bench.Case[float32] {
	return bench.Case[float32]{Name: name, Fn: unary32(fn), Start: start, Increment: defaultIncrement}
}

func trig(name string, fn func(float64) float64) bench.Case[float64] {
	return bench.Case[float64]{Name: name, Fn: fn, Start: trigStart, Increment: defaultIncrement}
}

func inverseTrig(name string, fn func(float64) float64) bench.Case[float64] {
	return bench.Case[float64]{Name: name, Fn: fn, Start: inverseTrigStart, Increment: inverseTrigIncrement}
}

func fine(name string, fn func(float64) float64) bench.Case[float64] {
	return bench.Case[float64]{Name: name, Fn: fn, Start: expStart, Increment: fineIncrement}
}

// suite is the fixed, ordered list of cases the binary runs.
func suite() []bench.Runner {
	return []bench.Runner{
		unary("Overhead", identity),
		unary32Case("Overhead32", identity, defaultStart),
		unary("IsNaN", isNaN),
		unary("IsInf", isInf),
		unary("Abs", math.Abs),
		unary("SignBit", signBit),
		bench.SplitCase[float64]{Name: "Frexp", Fn: frexp, Start: defaultStart, Increment: defaultIncrement},
		bench.SplitCase[float64]{Name: "Modf", Fn: modf, Start: defaultStart, Increment: defaultIncrement},
		unary("Min", func(x float64) float64 { return math.Min(x, x) }),
		unary("Max", func(x float64) float64 { return math.Max(x, x) }),
		unary("Floor", math.Floor),
		unary32Case("Floor32", math.Floor, defaultStart),
		unary("Ceil", math.Ceil),
		unary("Trunc", math.Trunc),
		unary("Round", math.Round),
		unary("RoundToEven", math.RoundToEven),
		bench.TernaryCase[float64]{
			Name:      "Clamp",
			Fn:        clamp,
			Start:     [3]float64{math.Pi, math.Pi / 2, 2 * math.Pi},
			Increment: defaultIncrement,
		},
		bench.BinaryCase[float64]{
			Name:       "Lerp",
			Fn:         lerp,
			Start1:     math.Pi / 2,
			Increment1: defaultIncrement,
			Start2:     3 * math.Pi,
			Increment2: defaultIncrement,
		},
		unary("Copysign", func(x float64) float64 { return math.Copysign(x, -1) }),
		bench.ScaleCase[float64]{
			Name:      "Scalbn",
			Fn:        math.Ldexp,
			Start:     math.Pi / 2,
			Increment: defaultIncrement,
			Exponents: scaleExponents,
		},
		trig("Sin", math.Sin),
		unary32Case("Sin32", math.Sin, trigStart),
		inverseTrig("Asin", math.Asin),
		trig("Cos", math.Cos),
		inverseTrig("Acos", math.Acos),
		trig("Tan", math.Tan),
		inverseTrig("Atan", math.Atan),
		inverseTrig("Atan2", func(x float64) float64 { return math.Atan2(x, x) }),
		unary("Sqrt", math.Sqrt),
		unary32Case("Sqrt32", math.Sqrt, defaultStart),
		bench.StepCase[float64]{Name: "NextUp", Fn: nextUp},
		bench.StepCase[float64]{Name: "NextDown", Fn: nextDown},
		bench.StepCase[float64]{Name: "NextAfter", Fn: nextAfter},
		bench.BinaryCase[float64]{
			Name:       "Fmod",
			Fn:         math.Mod,
			Start1:     math.Pi,
			Increment1: defaultIncrement,
			Start2:     math.Pi / 4,
			Increment2: defaultIncrement,
		},
		fine("Exp", math.Exp),
		bench.BinaryCase[float64]{
			Name:       "Hypot",
			Fn:         math.Hypot,
			Start1:     hypotStart,
			Increment1: fineIncrement,
			Start2:     hypotStart,
			Increment2: fineIncrement,
		},
		fine("Log", math.Log),
		fine("Log2", math.Log2),
		fine("Log10", math.Log10),
		bench.PairCase[float64]{
			Name: "ExpApprox", LabelA: "math", A: math.Exp, LabelB: "approx", B: fastExp,
			Start: expStart, Increment: fineIncrement,
		},
		bench.PairCase[float64]{
			Name: "LogApprox", LabelA: "math", A: math.Log, LabelB: "approx", B: fastLog,
			Start: expStart, Increment: fineIncrement,
		},
		bench.PairCase[float64]{
			Name: "SqrtApprox", LabelA: "math", A: math.Sqrt, LabelB: "approx", B: fastSqrt,
			Start: defaultStart, Increment: defaultIncrement,
		},
	}
}
