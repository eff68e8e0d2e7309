package bench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryCase(t *testing.T) {
	h, out, clock := newTestHarness(t, 3, 1)

	c := BinaryCase[float64]{
		Name:       "Sum",
		Fn:         func(x, y float64) float64 { return x + y },
		Start1:     1,
		Increment1: 1,
		Start2:     10,
		Increment2: 2,
	}
	require.NoError(t, c.Run(h))

	// 11 + 14 + 17
	assert.Equal(t, "Sum: Iterations=3, Duration=1ms, Accumulated=42\n", out.String())
	assert.Equal(t, 2, clock.reads)
}

func TestTernaryCase(t *testing.T) {
	h, out, _ := newTestHarness(t, 4, 1)

	clamp := func(v, lo, hi float64) float64 { return min(max(v, lo), hi) }
	c := TernaryCase[float64]{Name: "Clamp", Fn: clamp, Start: [3]float64{5, 0, 10}, Increment: 1}
	require.NoError(t, c.Run(h))

	// The value stays inside bounds that move with it.
	assert.Contains(t, out.String(), "Accumulated=26\n")
}

func TestSplitCase(t *testing.T) {
	h, out, _ := newTestHarness(t, 3, 2)

	c := SplitCase[float64]{
		Name:      "Split",
		Fn:        func(x float64) (float64, float64) { return x, 2 * x },
		Start:     1,
		Increment: 1,
	}
	require.NoError(t, c.Run(h))

	want := "Split: Iterations=3, Duration=1ms, Accumulated 1=6, Accumulated 2=12\n"
	assert.Equal(t, want+want, out.String())
}

func TestScaleCase(t *testing.T) {
	h, out, _ := newTestHarness(t, 7, 1)

	c := ScaleCase[float64]{Name: "Scalbn", Fn: math.Ldexp, Start: 1, Increment: 1, Exponents: 3}
	require.NoError(t, c.Run(h))

	// Two argument values fit in seven iterations: 1*(2+4+8) + 2*(2+4+8).
	assert.Equal(t, "Scalbn: Iterations=6, Duration=1ms, Accumulated=42\n", out.String())
}

func TestScaleCaseRejectsNoExponents(t *testing.T) {
	h, out, _ := newTestHarness(t, 7, 1)

	c := ScaleCase[float64]{Name: "Scalbn", Fn: math.Ldexp, Exponents: 0}
	assert.ErrorIs(t, c.Run(h), ErrInvalidConfig)
	assert.Empty(t, out.String())
}

func TestStepCase(t *testing.T) {
	h, out, _ := newTestHarness(t, 4, 1)

	c := StepCase[float64]{Name: "Inc", Fn: func(x float64) float64 { return x + 1 }}
	require.NoError(t, c.Run(h))

	assert.Equal(t, "Inc: Iterations=4, Duration=1ms, Accumulated=10\n", out.String())
}

func TestPairCase(t *testing.T) {
	h, out, clock := newTestHarness(t, 2, 1)

	c := PairCase[float64]{
		Name:      "Double",
		LabelA:    "plain",
		A:         identity,
		LabelB:    "twice",
		B:         func(x float64) float64 { return 2 * x },
		Start:     1,
		Increment: 1,
	}
	require.NoError(t, c.Run(h))

	got := lines(out)
	require.Len(t, got, 3)
	assert.Equal(t, "Double/plain: Iterations=2, Duration=1ms, Accumulated=3", got[0])
	assert.Equal(t, "Double/twice: Iterations=2, Duration=1ms, Accumulated=6", got[1])
	assert.Equal(t, "Double: plain vs twice: equal performance; accumulators differ (3, 6)", got[2])
	assert.Equal(t, 4, clock.reads)
}

func TestPairCaseIdentical(t *testing.T) {
	h, out, _ := newTestHarness(t, 100, 1)

	c := PairCase[float64]{
		Name:      "Sqrt",
		LabelA:    "math",
		A:         math.Sqrt,
		LabelB:    "wrapped",
		B:         func(x float64) float64 { return math.Sqrt(x) },
		Start:     math.Pi,
		Increment: 0.000001,
	}
	require.NoError(t, c.Run(h))

	got := lines(out)
	require.Len(t, got, 3)
	assert.Contains(t, got[2], "accumulators identical")
}
