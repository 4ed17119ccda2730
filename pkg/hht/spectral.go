package hht

import (
	"fmt"
	"math"

	"github.com/cwbudde/go-hht/pkg/hht/internal/transform"
	"github.com/cwbudde/go-hht/pkg/hht/internal/workerpool"
	"gonum.org/v1/gonum/floats"
)

// Analysis holds the instantaneous amplitude, phase, and frequency of a
// single IMF, grounded on Analysis.h's SpectralAnalyzerBase.
type Analysis[F Float] struct {
	Amplitude []F
	Phase     []F
	// Frequency has one fewer sample than Amplitude/Phase: it is the
	// forward difference of the unwrapped phase.
	Frequency []F
}

// Analyse computes the instantaneous amplitude/phase/frequency of ys,
// sampled at a uniform timestep dt, via its discrete-time analytic signal.
// Amplitude and phase/frequency are computed concurrently once the signal
// is long enough to make the split worthwhile, matching the original
// source's parallel_invoke threshold.
func Analyse[F Float](ys []F, dt F) (Analysis[F], error) {
	if len(ys) == 0 {
		return Analysis[F]{}, fmt.Errorf("%w: signal must be non-empty", ErrPreconditionViolated)
	}
	if dt <= 0 {
		return Analysis[F]{}, fmt.Errorf("%w: timestep must be positive, got %v", ErrPreconditionViolated, dt)
	}

	n := len(ys)
	analytic := transform.Analytic(ys)[:n]

	amplitude := make([]F, n)
	phase := make([]F, n)

	fillAmplitude := func() {
		for i, c := range analytic {
			amplitude[i] = c.Abs()
		}
	}
	fillPhase := func() {
		for i, c := range analytic {
			phase[i] = c.Phase()
		}
		unwrap(phase)
	}

	if n >= 100 {
		workerpool.Pair(fillAmplitude, fillPhase)
	} else {
		fillAmplitude()
		fillPhase()
	}

	frequency := make([]F, n-1)
	if n > 1 {
		floats64 := toFloat64(phase)
		diff := make([]float64, n-1)
		floats.SubTo(diff, floats64[1:], floats64[:n-1])
		floats.Scale(1/float64(dt), diff)
		for i, v := range diff {
			frequency[i] = F(v)
		}
	}

	return Analysis[F]{Amplitude: amplitude, Phase: phase, Frequency: frequency}, nil
}

// AnalyseWithTimeAxis is a convenience overload of Analyse for callers that
// hold an explicit time axis rather than a bare timestep. The timestep
// passed to Analyse is the mean step (xs[N-1]-xs[0])/(N-1) rather than
// xs[1]-xs[0], since xs is only required to be strictly increasing, not
// uniformly spaced, and the mean step is the correct scale factor for the
// instantaneous-frequency forward difference over the whole axis.
func AnalyseWithTimeAxis[F Float](xs, ys []F) (Analysis[F], error) {
	if len(xs) != len(ys) {
		return Analysis[F]{}, fmt.Errorf("%w: xs and ys have different lengths (%d vs %d)", ErrPreconditionViolated, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return Analysis[F]{}, fmt.Errorf("%w: need at least 2 samples to derive a timestep", ErrPreconditionViolated)
	}
	n := len(xs)
	return Analyse(ys, (xs[n-1]-xs[0])/F(n-1))
}

// unwrap removes 2*pi discontinuities from a sequence of phase angles in
// place, the standard unwrap algorithm (as used e.g. by numpy.unwrap).
func unwrap[F Float](phase []F) {
	const twoPi = 2 * math.Pi
	for i := 1; i < len(phase); i++ {
		delta := float64(phase[i] - phase[i-1])
		for delta > math.Pi {
			phase[i] -= F(twoPi)
			delta -= twoPi
		}
		for delta < -math.Pi {
			phase[i] += F(twoPi)
			delta += twoPi
		}
	}
}

func toFloat64[F Float](xs []F) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = float64(v)
	}
	return out
}
