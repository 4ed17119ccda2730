// Package transform implements the FFT core and the Hilbert transform built
// on top of it (spec.md §4.1-4.2). The FFT is an iterative radix-2
// Cooley-Tukey transform with a parallel butterfly stage per stage, modeled
// on _examples/andewx-gofft/fft.go's in-place stage loop and on the original
// source's FastFourierTransform::IterativeForward. Each element's
// bit-reversed index is computed on the fly and each stage's twiddle factor
// is advanced by repeated multiplication with that stage's root of unity;
// there is no precomputed permutation or twiddle table. The original's
// "+2pi" exponent sign is reproduced deliberately: conjugating on the way in and
// out of Inverse compensates for it, and a reimplementation that instead
// used the usual "-2pi" forward convention would produce phase-reversed
// spectra relative to the rest of this pipeline.
package transform

import (
	"errors"
	"math"
	"math/bits"

	"github.com/cwbudde/go-hht/pkg/hht/internal/numeric"
	"github.com/cwbudde/go-hht/pkg/hht/internal/workerpool"
)

// ErrNotPowerOfTwo is returned by Inverse when its input length is not a
// power of two.
var ErrNotPowerOfTwo = errors.New("transform: length is not a power of two")

// IsPow2 reports whether n is a power of two (n >= 1).
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPow2 returns the smallest power of two >= n (n >= 1).
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// ForwardReal zero-pads ys to the next power of two M and returns its DFT.
// Never fails.
func ForwardReal[F numeric.Float](ys []F) ([]Complex[F], int) {
	m := NextPow2(len(ys))
	a := make([]Complex[F], m)
	for i, v := range ys {
		a[i] = Complex[F]{Re: v}
	}
	fftInPlace(a, m)
	return a, m
}

// Inverse requires buf to have power-of-two length and returns its inverse
// DFT, computed by conjugation: conjugate, forward-transform, conjugate,
// scale by 1/M.
func Inverse[F numeric.Float](buf []Complex[F]) ([]Complex[F], error) {
	m := len(buf)
	if !IsPow2(m) {
		return nil, ErrNotPowerOfTwo
	}
	a := make([]Complex[F], m)
	for i, v := range buf {
		a[i] = v.Conj()
	}
	fftInPlace(a, m)
	invM := F(1) / F(m)
	for i := range a {
		a[i] = a[i].Conj().Scale(invM)
	}
	return a, nil
}

// fftInPlace runs the iterative radix-2 decimation-in-time transform over a,
// whose length m must already be a power of two. Stage s operates on blocks
// of width 1<<s; the butterfly loop over block-start indices k is
// independent across k within a stage and runs via workerpool.Parallel,
// matching the pipeline's data-parallel model (spec.md §5): stages
// themselves stay sequential, only the per-stage butterfly sweep is split.
func fftInPlace[F numeric.Float](a []Complex[F], m int) {
	bitReversePermute(a, m)

	stages := bits.Len(uint(m)) - 1
	for s := 1; s <= stages; s++ {
		width := 1 << s
		half := width / 2
		wm := Complex[F]{
			Re: F(math.Cos(2 * math.Pi / float64(width))),
			Im: F(math.Sin(2 * math.Pi / float64(width))),
		}
		blocks := m / width
		workerpool.Parallel(blocks, func(b int) {
			k := b * width
			w := Complex[F]{Re: 1}
			for j := 0; j < half; j++ {
				t := w.Mul(a[k+j+half])
				u := a[k+j]
				a[k+j] = u.Add(t)
				a[k+j+half] = u.Sub(t)
				w = w.Mul(wm)
			}
		})
	}
}

// bitReversePermute reorders a in place according to the bit-reversal
// permutation of its indices over log2(m) bits.
func bitReversePermute[F numeric.Float](a []Complex[F], m int) {
	bitsCount := bits.Len(uint(m)) - 1
	for i := 0; i < m; i++ {
		j := bitReverse(i, bitsCount)
		if j > i {
			a[i], a[j] = a[j], a[i]
		}
	}
}

func bitReverse(v, bitsCount int) int {
	r := 0
	for i := 0; i < bitsCount; i++ {
		if v&(1<<(bitsCount-1-i)) != 0 {
			r |= 1 << i
		}
	}
	return r
}
