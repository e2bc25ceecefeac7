package randvar

import "errors"

var (
	// ErrEmptySupport is returned when the support has no outcomes.
	ErrEmptySupport = errors.New("randvar: support must be non-empty")

	// ErrDimensionMismatch is returned when support and probability
	// vectors differ in length.
	ErrDimensionMismatch = errors.New("randvar: support and probability lengths differ")

	// ErrUnsortedSupport is returned when the support is not strictly
	// increasing (out of order, or containing duplicates).
	ErrUnsortedSupport = errors.New("randvar: support must be strictly increasing")

	// ErrInvalidPmf is returned when the probability vector has a negative
	// entry or its sum deviates from 1 beyond the configured tolerance.
	ErrInvalidPmf = errors.New("randvar: not a valid pmf")

	// ErrInvalidCmf is returned when the derived cumulative vector fails
	// monotonicity or the terminal-value check. A valid pmf always yields
	// a valid cmf, so this is an internal-consistency assertion rather
	// than a user-facing failure mode.
	ErrInvalidCmf = errors.New("randvar: not a valid cmf")

	// ErrNonIntegerSupport is returned by Sum and SumIID when a support
	// value is not a non-negative integer; the polynomial encoding indexes
	// coefficients by outcome value.
	ErrNonIntegerSupport = errors.New("randvar: support values must be non-negative integers")

	// ErrNonPositiveCount is returned by SumIID for n < 1.
	ErrNonPositiveCount = errors.New("randvar: count must be positive")
)

// RandVar is a discrete random variable: a strictly increasing support,
// a validated probability mass function over it, the derived cumulative
// vector, and a value→index map built once at construction.
//
// Instances are immutable. Every transform, map or combination returns a
// fresh RandVar; concurrent reads need no synchronization.
type RandVar struct {
	name string

	x []float64 // support, strictly increasing
	p []float64 // pmf, same length as x
	f []float64 // cmf prefix sums: len(x)+1 entries, f[0] = 0

	index map[float64]int // support value -> position in x
	eps   float64         // validation tolerance this instance was built with
}
