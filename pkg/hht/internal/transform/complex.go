package transform

import (
	"math"

	"github.com/cwbudde/go-hht/pkg/hht/internal/numeric"
)

// Complex is a generic pair-of-floats value, standing in for complex128
// where the element type must vary between float32 and float64 (Go's
// built-in complex64/complex128 types cannot be parameterized by F).
type Complex[F numeric.Float] struct {
	Re, Im F
}

func (c Complex[F]) Add(o Complex[F]) Complex[F] {
	return Complex[F]{c.Re + o.Re, c.Im + o.Im}
}

func (c Complex[F]) Sub(o Complex[F]) Complex[F] {
	return Complex[F]{c.Re - o.Re, c.Im - o.Im}
}

func (c Complex[F]) Mul(o Complex[F]) Complex[F] {
	return Complex[F]{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

func (c Complex[F]) Conj() Complex[F] {
	return Complex[F]{c.Re, -c.Im}
}

func (c Complex[F]) Scale(s F) Complex[F] {
	return Complex[F]{c.Re * s, c.Im * s}
}

// Abs returns the modulus of c, computed at float64 precision and cast back
// to F to keep a single sqrt implementation regardless of F.
func (c Complex[F]) Abs() F {
	return F(math.Sqrt(float64(c.Re)*float64(c.Re) + float64(c.Im)*float64(c.Im)))
}

// Phase returns atan2(Im, Re), branch in (-pi, pi].
func (c Complex[F]) Phase() F {
	return F(math.Atan2(float64(c.Im), float64(c.Re)))
}
