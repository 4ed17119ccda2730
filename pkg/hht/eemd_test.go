package hht_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/go-hht/pkg/hht"
)

func TestEnsembleDecompose_RejectsNonPositiveEnsembleCount(t *testing.T) {
	t.Parallel()

	xs := linspace(0, 1, 20)
	ys := linspace(0, 1, 20)
	_, err := hht.EnsembleDecompose(xs, ys, hht.EEMDOptions{EnsembleCount: 0, NoiseSD: 0.1})
	if !errors.Is(err, hht.ErrPreconditionViolated) {
		t.Fatalf("err = %v, want ErrPreconditionViolated", err)
	}
}

func TestEnsembleDecompose_RejectsNonPositiveNoiseSD(t *testing.T) {
	t.Parallel()

	xs := linspace(0, 1, 20)
	ys := linspace(0, 1, 20)
	_, err := hht.EnsembleDecompose(xs, ys, hht.EEMDOptions{EnsembleCount: 10, NoiseSD: 0})
	if !errors.Is(err, hht.ErrPreconditionViolated) {
		t.Fatalf("err = %v, want ErrPreconditionViolated", err)
	}
}

func TestEnsembleDecompose_IsReproducibleWithSeed(t *testing.T) {
	t.Parallel()

	const n = 256
	xs := linspace(0, 8*math.Pi, n)
	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = math.Sin(x) + 0.4*math.Sin(6*x)
	}

	seed := uint64(42)
	opts := hht.EEMDOptions{EnsembleCount: 8, NoiseSD: 0.2, Seed: &seed}

	a, err := hht.EnsembleDecompose(xs, ys, opts)
	if err != nil {
		t.Fatalf("EnsembleDecompose returned error: %v", err)
	}
	b, err := hht.EnsembleDecompose(xs, ys, opts)
	if err != nil {
		t.Fatalf("EnsembleDecompose returned error: %v", err)
	}

	if len(a.IMFs) != len(b.IMFs) {
		t.Fatalf("len(IMFs) differ across runs with the same seed: %d vs %d", len(a.IMFs), len(b.IMFs))
	}
	for i := range a.IMFs {
		for j := range a.IMFs[i] {
			if math.Abs(a.IMFs[i][j]-b.IMFs[i][j]) > 1e-12 {
				t.Fatalf("IMF[%d][%d] differs across identically-seeded runs: %v vs %v", i, j, a.IMFs[i][j], b.IMFs[i][j])
			}
		}
	}
}

func TestEnsembleDecompose_ActualCountsNeverExceedEnsembleCount(t *testing.T) {
	t.Parallel()

	const n = 256
	xs := linspace(0, 8*math.Pi, n)
	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = math.Sin(x)
	}

	seed := uint64(7)
	d, err := hht.EnsembleDecompose(xs, ys, hht.EEMDOptions{EnsembleCount: 6, NoiseSD: 0.1, Seed: &seed})
	if err != nil {
		t.Fatalf("EnsembleDecompose returned error: %v", err)
	}
	for i, c := range d.ActualCounts {
		if c < 0 || c > 6 {
			t.Fatalf("ActualCounts[%d] = %d, want in [0, 6]", i, c)
		}
	}
}
