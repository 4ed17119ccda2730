package hht

import (
	"fmt"
	"math"

	"github.com/cwbudde/go-hht/pkg/hht/internal/sift"
)

// EMDOptions configures a single Decompose call.
type EMDOptions struct {
	// MaxIMFs caps the number of IMFs extracted; zero means unlimited,
	// which is itself capped at floor(log2(len(ys)))+1 as in the original
	// source's InternalEmdDecomposer.
	MaxIMFs int
}

// Decomposition is the result of a plain (non-ensemble) EMD run: the
// extracted IMFs in peeling order, and the final residue.
type Decomposition[F Float] struct {
	IMFs    [][]F
	Residue []F
}

// Decompose peels intrinsic mode functions off ys (sampled at xs) one at a
// time via the sifting loop, stopping when the residue has no extractable
// IMF left, MaxIMFs trials have been exhausted, or the log2(length)+1 bound
// is reached, grounded on Decomposition.h's InternalEmdDecomposer.
func Decompose[F Float](xs, ys []F, opts EMDOptions) (Decomposition[F], error) {
	if err := validateSignal(xs, ys); err != nil {
		return Decomposition[F]{}, err
	}

	maxIMFs := opts.MaxIMFs
	bound := int(math.Log2(float64(len(ys)))) + 1
	if maxIMFs <= 0 || maxIMFs > bound {
		maxIMFs = bound
	}

	residue := append([]F(nil), ys...)
	var imfs [][]F

	for len(imfs) < maxIMFs {
		imf, err := sift.Extract(xs, residue)
		if err != nil {
			break
		}
		for i := range residue {
			residue[i] -= imf[i]
		}
		if hasNonFinite(imf) {
			return Decomposition[F]{}, fmt.Errorf("%w: IMF %d contains NaN/Inf", ErrNumericalFailure, len(imfs))
		}
		imfs = append(imfs, imf)
	}

	return Decomposition[F]{IMFs: imfs, Residue: residue}, nil
}

func hasNonFinite[F Float](xs []F) bool {
	for _, v := range xs {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return true
		}
	}
	return false
}

// validateSignal enforces the preconditions shared by Decompose and
// EnsembleDecompose: equal-length, non-empty, strictly increasing xs.
func validateSignal[F Float](xs, ys []F) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: xs and ys have different lengths (%d vs %d)", ErrPreconditionViolated, len(xs), len(ys))
	}
	if len(ys) < 2 {
		return fmt.Errorf("%w: signal must have at least 2 samples, got %d", ErrPreconditionViolated, len(ys))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return fmt.Errorf("%w: xs must be strictly increasing (index %d)", ErrPreconditionViolated, i)
		}
	}
	return nil
}
