package transform_test

import (
	"math"
	"testing"

	"github.com/cwbudde/go-hht/pkg/hht/internal/transform"
)

func TestAnalytic_SineYieldsConstantEnvelope(t *testing.T) {
	t.Parallel()

	const (
		n    = 256
		k    = 11 // bin index, away from DC/Nyquist
		want = 1.0
	)
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = math.Sin(2 * math.Pi * float64(k) * float64(i) / float64(n))
	}

	analytic := transform.Analytic(ys)[:n]
	for i, c := range analytic {
		if math.Abs(c.Abs()-want) > 1e-6 {
			t.Fatalf("|analytic[%d]| = %.6f, want %.6f", i, c.Abs(), want)
		}
	}
}

func TestAnalytic_RealPartMatchesInput(t *testing.T) {
	t.Parallel()

	ys := []float64{0.2, -0.5, 0.9, 0.1, -0.3, 0.7, 0.0, -0.8}
	analytic := transform.Analytic(ys)[:len(ys)]
	for i, v := range ys {
		if math.Abs(analytic[i].Re-v) > 1e-9 {
			t.Fatalf("Re(analytic[%d]) = %v, want %v", i, analytic[i].Re, v)
		}
	}
}
