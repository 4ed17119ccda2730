package transform

import "github.com/cwbudde/go-hht/pkg/hht/internal/numeric"

// Analytic builds the discrete-time analytic signal of a real sequence via
// FFT, per spec.md §4.2, with the bin construction of
// gonum.org/v1/gonum/dsp/fourier's Hilbert transform and of the original
// source's HilbertTransform::Forward: bins 1..M/2-1 are doubled, bins
// M/2+1..M-1 are zeroed, and DC and Nyquist are left untouched. Because
// ForwardReal uses the "+2pi" exponent sign, the doubled bins hold the
// negative-frequency content, so the result is the complex conjugate of the
// textbook analytic signal: its real part is ys, its imaginary part is the
// negated Hilbert transform of ys, and its phase decreases over time for a
// positive-frequency tone. The modulus is the same either way. The returned
// buffer has length M =
// next-power-of-two(len(ys)) >= len(ys); callers use its first len(ys)
// entries as the analytic signal.
func Analytic[F numeric.Float](ys []F) []Complex[F] {
	buf, m := ForwardReal(ys)
	if m > 1 {
		i := 1
		for ; i < m/2; i++ {
			buf[i] = buf[i].Scale(2)
		}
		i++ // buf[m/2] (Nyquist) unchanged
		for ; i < m; i++ {
			buf[i] = Complex[F]{}
		}
	}
	out, err := Inverse(buf)
	if err != nil {
		// buf's length is always a power of two by construction of
		// ForwardReal, so Inverse can never reject it.
		panic(err)
	}
	return out
}
