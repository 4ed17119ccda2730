// Package sift implements the sifting loop that peels a single IMF off a
// residue signal (spec.md §4.5), grounded on Decomposition.h's Sifter.
package sift

import (
	"errors"
	"math"

	"github.com/cwbudde/go-hht/pkg/hht/internal/envelope"
	"github.com/cwbudde/go-hht/pkg/hht/internal/numeric"
)

// ErrNotAnImf is returned when the residue is monotonic (no interior
// extrema) before a single IMF candidate could be extracted from it.
var ErrNotAnImf = errors.New("sift: residue has no extractable IMF")

// MaxIterations bounds the sifting loop so a pathological input cannot spin
// forever; the original source has no such bound, but a finite one is
// required for a library that must always return.
const MaxIterations = 1000

// Extract runs the sifting loop on ys (sampled at xs) until the stopping
// criterion is met or MaxIterations is reached, and returns the resulting
// IMF candidate. The stopping criterion combines a normalized squared
// difference below 0.1 with an extrema/zero-crossing count difference in
// (-2, 2), matching the original source exactly.
func Extract[F numeric.Float](xs, prev []F) ([]F, error) {
	h := append([]F(nil), prev...)

	for iter := 0; iter < MaxIterations; iter++ {
		envs, err := envelope.Find(xs, h)
		if err != nil {
			return nil, ErrNotAnImf
		}

		next := make([]F, len(h))
		for i := range h {
			mean := F(0.5) * (envs.Upper[i] + envs.Lower[i])
			next[i] = h[i] - mean
		}

		diff := (envs.UpperExtremaCount + envs.LowerExtremaCount) - envs.ZeroCrossingCount
		if isFinished(h, next, diff) {
			return next, nil
		}
		h = next
	}
	return h, nil
}

// isFinished reports whether the sifting loop should stop: the normalized
// sum of squared differences between the previous and new candidate must be
// below 0.1, and the extrema/zero-crossing count difference must lie
// strictly within (-2, 2). Terms where prev[i] or next[i] is NaN are
// skipped in the accumulation rather than poisoning the whole sum, per the
// original source's NaN-tolerant SD criterion. A vanishing residue
// (denominator 0) is treated as already converged.
func isFinished[F numeric.Float](prev, next []F, extremaDiff int) bool {
	var num, den F
	for i := range prev {
		if isNaN(prev[i]) || isNaN(next[i]) {
			continue
		}
		d := prev[i] - next[i]
		num += d * d
		den += prev[i] * prev[i]
	}
	if den == 0 {
		return true
	}
	return num/den < F(0.1) && extremaDiff > -2 && extremaDiff < 2
}

func isNaN[F numeric.Float](v F) bool {
	return math.IsNaN(float64(v))
}
