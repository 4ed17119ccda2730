package hht_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/go-hht/pkg/hht"
)

func TestAnalyse_RejectsEmptySignal(t *testing.T) {
	t.Parallel()

	_, err := hht.Analyse[float64](nil, 0.01)
	if !errors.Is(err, hht.ErrPreconditionViolated) {
		t.Fatalf("err = %v, want ErrPreconditionViolated", err)
	}
}

func TestAnalyse_RejectsNonPositiveTimestep(t *testing.T) {
	t.Parallel()

	_, err := hht.Analyse([]float64{1, 2, 3}, 0)
	if !errors.Is(err, hht.ErrPreconditionViolated) {
		t.Fatalf("err = %v, want ErrPreconditionViolated", err)
	}
}

func TestAnalyse_PureToneHasConstantAmplitudeAndFrequency(t *testing.T) {
	t.Parallel()

	const (
		n    = 256
		freq = 5.0
		dt   = 0.01
	)
	ys := make([]float64, n)
	for i := range ys {
		t := float64(i) * dt
		ys[i] = math.Sin(2 * math.Pi * freq * t)
	}

	a, err := hht.Analyse(ys, dt)
	if err != nil {
		t.Fatalf("Analyse returned error: %v", err)
	}

	for i := 10; i < n-10; i++ {
		if math.Abs(a.Amplitude[i]-1.0) > 0.05 {
			t.Fatalf("Amplitude[%d] = %v, want ~1.0", i, a.Amplitude[i])
		}
	}

	expectedFreq := 2 * math.Pi * freq
	for i := 10; i < n-11; i++ {
		if math.Abs(math.Abs(a.Frequency[i])-expectedFreq) > expectedFreq*0.1 {
			t.Fatalf("|Frequency[%d]| = %v, want ~%v", i, math.Abs(a.Frequency[i]), expectedFreq)
		}
	}
}

func TestAnalyseWithTimeAxis_MatchesAnalyse(t *testing.T) {
	t.Parallel()

	const n = 128
	dt := 0.02
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) * dt
		ys[i] = math.Sin(2 * math.Pi * 3 * xs[i])
	}

	byTimestep, err := hht.Analyse(ys, dt)
	if err != nil {
		t.Fatalf("Analyse returned error: %v", err)
	}
	byAxis, err := hht.AnalyseWithTimeAxis(xs, ys)
	if err != nil {
		t.Fatalf("AnalyseWithTimeAxis returned error: %v", err)
	}

	for i := range byTimestep.Amplitude {
		if byTimestep.Amplitude[i] != byAxis.Amplitude[i] {
			t.Fatalf("Amplitude[%d] differs: %v vs %v", i, byTimestep.Amplitude[i], byAxis.Amplitude[i])
		}
	}
}
