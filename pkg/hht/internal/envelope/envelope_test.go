package envelope_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/go-hht/pkg/hht/internal/envelope"
)

func linspace(start, end float64, n int) []float64 {
	xs := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range xs {
		xs[i] = start + float64(i)*step
	}
	return xs
}

func TestFind_MonotonicSignalReturnsError(t *testing.T) {
	t.Parallel()

	xs := linspace(0, 1, 10)
	ys := make([]float64, 10)
	for i := range ys {
		ys[i] = float64(i)
	}

	_, err := envelope.Find(xs, ys)
	if !errors.Is(err, envelope.ErrMonotonicSignal) {
		t.Fatalf("err = %v, want ErrMonotonicSignal", err)
	}
}

func TestFind_SineEnvelopesBracketTheSignal(t *testing.T) {
	t.Parallel()

	const n = 200
	xs := linspace(0, 4*math.Pi, n)
	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = math.Sin(x)
	}

	env, err := envelope.Find(xs, ys)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if env.UpperExtremaCount == 0 || env.LowerExtremaCount == 0 {
		t.Fatalf("expected interior extrema on both sides, got upper=%d lower=%d",
			env.UpperExtremaCount, env.LowerExtremaCount)
	}

	for i, y := range ys {
		// Interior samples should sit within (or very near) the envelope band;
		// spline overshoot near the ends makes an exact bound unsafe there.
		if i < 5 || i > n-5 {
			continue
		}
		if y > env.Upper[i]+1e-6 {
			t.Fatalf("sample %d: y=%v exceeds upper envelope %v", i, y, env.Upper[i])
		}
		if y < env.Lower[i]-1e-6 {
			t.Fatalf("sample %d: y=%v below lower envelope %v", i, y, env.Lower[i])
		}
	}
}

func TestFind_ZeroCrossingCount(t *testing.T) {
	t.Parallel()

	const n = 401
	xs := linspace(0, 4*math.Pi, n)
	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = math.Sin(x)
	}

	env, err := envelope.Find(xs, ys)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	// sin(x) over [0, 4*pi] crosses zero at three interior points
	// (pi, 2pi, 3pi); Find also counts the start, where ys[0] == 0 and
	// ys[1] != 0, so it reports 4.
	if env.ZeroCrossingCount < 3 {
		t.Fatalf("ZeroCrossingCount = %d, want >= 3", env.ZeroCrossingCount)
	}
}
