// Package hht implements the Hilbert-Huang Transform: adaptive, non-stationary
// time-frequency analysis of one-dimensional real-valued signals via
// Empirical Mode Decomposition (or its noise-assisted ensemble variant) and
// Hilbert spectral analysis.
//
// The pipeline is generic over the sample element type via the Float
// constraint, so a caller picks float32 or float64 once at the call site and
// every stage — FFT, Hilbert transform, spline fitting, sifting, EMD/EEMD,
// spectral analysis, Hilbert spectrum — runs at that precision without any
// duplicated code path.
package hht

import "github.com/cwbudde/go-hht/pkg/hht/internal/numeric"

// Float is the element type a pipeline instance is generic over. Only the
// two IEEE floating-point types are supported; a tilde is used so named
// types with an underlying float32/float64 also satisfy it. It is an alias
// of numeric.Float so every internal package can depend on the constraint
// without importing this root package back.
type Float = numeric.Float
