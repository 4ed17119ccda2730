// Package interp implements the natural cubic/linear spline fit used to
// build envelope curves through a signal's extrema (spec.md §4.3-4.4),
// grounded on Decomposition.h's TriDiagonalMatrix/CubicSpline/LinearSpline.
package interp

import "github.com/cwbudde/go-hht/pkg/hht/internal/numeric"

// SolveTridiagonal solves T*x = d for a symmetric tridiagonal system with
// sub-diagonal a, main diagonal b, super-diagonal c (each length n), using
// the Thomas algorithm: a forward elimination sweep followed by a backward
// substitution. No pivoting is performed; the spline systems this is used
// for are diagonally dominant by construction.
//
// The forward sweep starts at i=1 (a[0] and c'[-1] do not exist); one
// revision of the original source iterated from i=0, which would read
// cPrime[-1] out of bounds. This implementation uses the corrected bound.
func SolveTridiagonal[F numeric.Float](a, b, c, d []F) []F {
	n := len(b)
	cPrime := make([]F, n)
	dPrime := make([]F, n)

	cPrime[0] = c[0] / b[0]
	dPrime[0] = d[0] / b[0]
	for i := 1; i < n; i++ {
		denom := b[i] - cPrime[i-1]*a[i]
		cPrime[i] = c[i] / denom
		dPrime[i] = (d[i] - dPrime[i-1]*a[i]) / denom
	}

	x := make([]F, n)
	x[n-1] = dPrime[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dPrime[i] - cPrime[i]*x[i+1]
	}
	return x
}
