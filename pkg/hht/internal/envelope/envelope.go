// Package envelope locates a sampled signal's local extrema and fits the
// upper/lower envelope curves through them (spec.md §4.3), grounded on
// Decomposition.h's EnvelopeFinder.
package envelope

import (
	"errors"

	"github.com/cwbudde/go-hht/pkg/hht/internal/interp"
	"github.com/cwbudde/go-hht/pkg/hht/internal/numeric"
	"github.com/cwbudde/go-hht/pkg/hht/internal/workerpool"
)

// ErrMonotonicSignal is returned when a signal has no interior extrema at
// all (neither a local maximum nor a local minimum), so no meaningful
// envelope can be fit through it.
var ErrMonotonicSignal = errors.New("envelope: signal has no interior extrema")

// Envelopes holds the upper and lower envelope curves resampled onto the
// same x-axis as the input signal, plus the extrema/zero-crossing counts
// the sifting stop criterion needs.
type Envelopes[F numeric.Float] struct {
	Upper             []F
	Lower             []F
	UpperExtremaCount int
	LowerExtremaCount int
	ZeroCrossingCount int
}

// Find scans ys for interior local maxima and minima (the endpoints are
// always anchored into both extrema sets so the envelope spans the full
// signal), fits a natural cubic spline through each set when it has at
// least one interior extremum and falls back to a single linear segment
// otherwise, and counts sign changes for the sifting stop criterion.
// Returns ErrMonotonicSignal if ys has no interior extrema of either kind.
func Find[F numeric.Float](xs, ys []F) (Envelopes[F], error) {
	n := len(ys)

	maxX, maxY := []F{xs[0]}, []F{ys[0]}
	minX, minY := []F{xs[0]}, []F{ys[0]}

	for i := 1; i < n-1; i++ {
		switch {
		case ys[i] > ys[i-1] && ys[i] > ys[i+1]:
			maxX, maxY = append(maxX, xs[i]), append(maxY, ys[i])
		case ys[i] < ys[i-1] && ys[i] < ys[i+1]:
			minX, minY = append(minX, xs[i]), append(minY, ys[i])
		}
	}

	zc := 0
	for i := 0; i < n-1; i++ {
		if (ys[i] < 0 && ys[i+1] >= 0) || (ys[i] > 0 && ys[i+1] <= 0) {
			zc++
		}
	}
	if ys[0] == 0 && ys[1] != 0 {
		zc++
	}

	maxX, maxY = append(maxX, xs[n-1]), append(maxY, ys[n-1])
	minX, minY = append(minX, xs[n-1]), append(minY, ys[n-1])
	upperCount := len(maxY) - 2
	lowerCount := len(minY) - 2

	if upperCount == 0 && lowerCount == 0 {
		return Envelopes[F]{}, ErrMonotonicSignal
	}

	var upper, lower []F
	workerpool.Pair(func() {
		if upperCount == 0 {
			upper = interp.LinearSpline(maxX, maxY, xs)
		} else {
			upper = interp.CubicSpline(maxX, maxY, xs)
		}
	}, func() {
		if lowerCount == 0 {
			lower = interp.LinearSpline(minX, minY, xs)
		} else {
			lower = interp.CubicSpline(minX, minY, xs)
		}
	})

	return Envelopes[F]{
		Upper:             upper,
		Lower:             lower,
		UpperExtremaCount: upperCount,
		LowerExtremaCount: lowerCount,
		ZeroCrossingCount: zc,
	}, nil
}
