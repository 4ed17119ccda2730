package hht

import (
	"fmt"
	"time"

	"github.com/cwbudde/go-hht/pkg/hht/internal/workerpool"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// EEMDOptions configures an EnsembleDecompose call.
type EEMDOptions struct {
	// EnsembleCount is the number of noise-perturbed trials averaged
	// together; must be positive. A value around 100 matches the default
	// used by the original source's EemdDecomposer.
	EnsembleCount int
	// NoiseSD is the standard deviation of the white Gaussian noise added
	// to each trial; must be positive.
	NoiseSD float64
	// MaxIMFs caps the per-trial IMF count, same semantics as EMDOptions.
	MaxIMFs int
	// Seed, when non-nil, makes the noise draws reproducible. When nil the
	// generator reseeds from the wall clock, matching the original
	// source's std::default_random_engine seeding.
	Seed *uint64
}

// EnsembleDecomposition is the result of an EnsembleDecompose call: the
// averaged IMFs, and the count of trials that actually contributed to each
// IMF index (not every trial produces the same number of IMFs). There is no
// residue field: each trial's residue is specific to that trial's
// noise-perturbed signal, so averaging residues across trials is not a
// meaningful quantity.
type EnsembleDecomposition[F Float] struct {
	IMFs         [][]F
	ActualCounts []int
}

// EnsembleDecompose runs EnsembleCount independent EMD trials on ys plus
// fresh white Gaussian noise of standard deviation NoiseSD, then averages
// the resulting IMFs index-by-index across however many trials produced an
// IMF at that index, grounded on Decomposition.h's EemdDecomposer. Trials
// run concurrently via workerpool.Parallel.
func EnsembleDecompose[F Float](xs, ys []F, opts EEMDOptions) (EnsembleDecomposition[F], error) {
	if err := validateSignal(xs, ys); err != nil {
		return EnsembleDecomposition[F]{}, err
	}
	if opts.EnsembleCount <= 0 {
		return EnsembleDecomposition[F]{}, fmt.Errorf("%w: EnsembleCount must be positive, got %d", ErrPreconditionViolated, opts.EnsembleCount)
	}
	if opts.NoiseSD <= 0 {
		return EnsembleDecomposition[F]{}, fmt.Errorf("%w: NoiseSD must be positive, got %v", ErrPreconditionViolated, opts.NoiseSD)
	}

	seed := uint64(time.Now().UnixNano())
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	trials := make([][][]F, opts.EnsembleCount)
	workerpool.Parallel(opts.EnsembleCount, func(i int) {
		src := rand.NewSource(seed + uint64(i))
		noise := distuv.Normal{Mu: 0, Sigma: opts.NoiseSD, Src: src}

		perturbed := make([]F, len(ys))
		for j, v := range ys {
			perturbed[j] = v + F(noise.Rand())
		}

		d, err := Decompose(xs, perturbed, EMDOptions{MaxIMFs: opts.MaxIMFs})
		if err != nil {
			return
		}
		trials[i] = d.IMFs
	})

	maxIMFCount := 0
	for _, t := range trials {
		if len(t) > maxIMFCount {
			maxIMFCount = len(t)
		}
	}

	n := len(ys)
	imfs := make([][]F, maxIMFCount)
	counts := make([]int, maxIMFCount)
	for idx := range imfs {
		sum := make([]F, n)
		count := 0
		for _, t := range trials {
			if idx >= len(t) {
				continue
			}
			count++
			for j := range sum {
				sum[j] += t[idx][j]
			}
		}
		if count > 0 {
			inv := F(1) / F(count)
			for j := range sum {
				sum[j] *= inv
			}
		}
		imfs[idx] = sum
		counts[idx] = count
	}

	return EnsembleDecomposition[F]{IMFs: imfs, ActualCounts: counts}, nil
}
