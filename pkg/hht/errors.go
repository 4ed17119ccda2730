package hht

import "errors"

// ErrPreconditionViolated marks a fatal programmer error: mismatched xs/ys
// lengths, fewer than two samples, a non-monotone time axis, a non-positive
// ensemble count, noise standard deviation or timestep, an empty signal
// passed to Analyse, or an empty IMF set passed to NewHilbertSpectrum. The
// internal inverse FFT reports a non-power-of-two length with its own
// transform.ErrNotPowerOfTwo, and the cubic spline does not check its knot
// count; neither is reported through this error. Callers are expected to
// validate before calling; this is never meant to be recovered from.
var ErrPreconditionViolated = errors.New("hht: precondition violated")

// ErrNumericalFailure marks detected NaN/Inf propagation outside of the
// sifter's NaN-tolerant stopping-criterion accumulator. On well-formed
// real-valued input this should never occur; seeing it indicates a bug in
// the algorithm rather than a user-facing condition.
var ErrNumericalFailure = errors.New("hht: numerical failure")
