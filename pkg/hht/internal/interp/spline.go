package interp

import (
	"sort"

	"github.com/cwbudde/go-hht/pkg/hht/internal/numeric"
)

// CubicSpline fits a natural cubic spline through (knotX[i], knotY[i]),
// i=0..K-1 (K>=3, knotX strictly increasing) and evaluates it at each point
// of evalX. Grounded on Decomposition.h's CubicSpline, derived to minimize
// divisions during evaluation.
func CubicSpline[F numeric.Float](knotX, knotY, evalX []F) []F {
	m := fitSecondDerivatives(knotX, knotY)

	out := make([]F, len(evalX))
	for idx, x := range evalX {
		i := bracket(knotX, x)

		dx1 := knotX[i] - x
		dx0 := x - knotX[i-1]
		h := knotX[i] - knotX[i-1]
		num := dx1*(dx1*dx1*m[i-1]+6*knotY[i-1]-m[i-1]*h*h) +
			dx0*(dx0*dx0*m[i]+6*knotY[i]-m[i]*h*h)
		out[idx] = num / (6 * h)
	}
	return out
}

// fitSecondDerivatives solves for the natural-boundary second-derivative
// vector M (M[0] = M[K-1] = 0) of the cubic spline through the given knots.
func fitSecondDerivatives[F numeric.Float](x, y []F) []F {
	k := len(x)
	a := make([]F, k) // sub-diagonal (mu)
	b := make([]F, k) // main diagonal
	c := make([]F, k) // super-diagonal (lambda)
	d := make([]F, k)

	for i := range b {
		b[i] = 2
	}
	for i := 1; i < k-1; i++ {
		a[i] = (x[i] - x[i-1]) / (x[i+1] - x[i-1])
		c[i] = 1 - a[i]

		dx0 := x[i] - x[i-1]
		dx1 := x[i+1] - x[i]
		dx10 := x[i+1] - x[i-1]
		dy0 := y[i] - y[i-1]
		dy1 := y[i+1] - y[i]
		d[i] = 6 * ((dy1*dx0 - dy0*dx1) / (dx10 * dx1 * dx0))
	}

	return SolveTridiagonal(a, b, c, d)
}

// bracket returns the index i such that knotX[i-1] <= x <= knotX[i],
// clamped at the boundaries, matching std::lower_bound's adjustment in the
// original source.
func bracket[F numeric.Float](knotX []F, x F) int {
	i := sort.Search(len(knotX), func(j int) bool { return knotX[j] >= x })
	if i == len(knotX) {
		i--
	} else if i == 0 {
		i++
	}
	return i
}

// LinearSpline is the degenerate fallback used when only two knots are
// available: a single affine fit through them, evaluated at evalX.
func LinearSpline[F numeric.Float](knotX, knotY, evalX []F) []F {
	a := (knotY[0] - knotY[1]) / (knotX[0] - knotX[1])
	b := knotY[0] - a*knotX[0]

	out := make([]F, len(evalX))
	for i, x := range evalX {
		out[i] = a*x + b
	}
	return out
}
