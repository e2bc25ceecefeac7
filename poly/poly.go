package poly

import (
	"errors"

	"github.com/probkit/probkit/fft"
)

var (
	// ErrEmptySequence is returned when a coefficient, support or weight
	// vector has no entries.
	ErrEmptySequence = errors.New("poly: sequence must be non-empty")

	// ErrNegativeExponent is returned by Pow for k < 0.
	ErrNegativeExponent = errors.New("poly: exponent must be non-negative")

	// ErrDimensionMismatch is returned by FromSparse when support and
	// weight vectors differ in length.
	ErrDimensionMismatch = errors.New("poly: support and weight lengths differ")

	// ErrNegativeSupport is returned by FromSparse for a negative degree.
	ErrNegativeSupport = errors.New("poly: support values must be non-negative")

	// ErrDuplicateSupport is returned by FromSparse when two support
	// entries name the same degree.
	ErrDuplicateSupport = errors.New("poly: duplicate support value")
)

// Mul returns the product of polynomials a and b (the convolution of
// their coefficient vectors), computed via the FFT.
//
// Both operands are zero-padded to the smallest power of two ≥
// lenA+lenB−1, so the circular convolution the transform performs never
// wraps onto true coefficients. The padded sequences are transformed,
// multiplied pointwise, inverse-transformed, and the real parts taken.
//
// By default the result is trimmed to the exact product degree
// lenA+lenB−2, i.e. lenA+lenB−1 coefficients; WithFullLength keeps the
// padded length instead.
//
// Complexity: O(n log n) time, O(n) space, for n the padded length.
func Mul(a, b []float64, opts ...Option) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptySequence
	}
	o := gatherOptions(opts...)

	deg := len(a) + len(b) - 1 // true coefficient count of the product
	n := nextPowerOfTwo(deg)

	fa := lift(a, n)
	fb := lift(b, n)
	if err := fft.Forward(fa); err != nil {
		return nil, err
	}
	if err := fft.Forward(fb); err != nil {
		return nil, err
	}
	for i := range fa {
		fa[i] *= fb[i]
	}
	if err := fft.Inverse(fa); err != nil {
		return nil, err
	}

	out := deg
	if !o.trim {
		out = n
	}
	res := make([]float64, out)
	for i := range res {
		res[i] = real(fa[i])
	}

	return res, nil
}

// Pow returns p raised to the k-th power under convolution, using binary
// exponentiation: the identity polynomial [1] for k = 0, otherwise the
// base is squared per exponent bit and multiplied into the accumulator on
// set bits: O(log k) convolutions instead of O(k).
//
// Intermediate products are always trimmed to exact degree so they do not
// accumulate padding; the trim Option only shapes the final result.
func Pow(p []float64, k int, opts ...Option) ([]float64, error) {
	if len(p) == 0 {
		return nil, ErrEmptySequence
	}
	if k < 0 {
		return nil, ErrNegativeExponent
	}
	o := gatherOptions(opts...)

	acc := []float64{1}
	base := append([]float64(nil), p...)
	var err error
	for k > 0 {
		if k&1 == 1 {
			if acc, err = Mul(acc, base); err != nil {
				return nil, err
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, err
			}
		}
	}

	if !o.trim {
		padded := make([]float64, nextPowerOfTwo(len(acc)))
		copy(padded, acc)
		acc = padded
	}

	return acc, nil
}

// FromSparse builds a dense coefficient vector of length max(support)+1
// with dense[support[i]] = weights[i] and zero everywhere else. This is
// how a pmf over an integer support becomes a polynomial: the convolution
// product of two such polynomials is the pmf of the sum of the two
// independent underlying variables.
func FromSparse(support []int, weights []float64) ([]float64, error) {
	if len(support) == 0 {
		return nil, ErrEmptySequence
	}
	if len(support) != len(weights) {
		return nil, ErrDimensionMismatch
	}

	maxDeg := 0
	for _, s := range support {
		if s < 0 {
			return nil, ErrNegativeSupport
		}
		if s > maxDeg {
			maxDeg = s
		}
	}

	dense := make([]float64, maxDeg+1)
	seen := make([]bool, maxDeg+1)
	for i, s := range support {
		if seen[s] {
			return nil, ErrDuplicateSupport
		}
		seen[s] = true
		dense[s] = weights[i]
	}

	return dense, nil
}

// lift copies a into a zero-padded complex sequence of length n ≥ len(a).
func lift(a []float64, n int) []complex128 {
	out := make([]complex128, n)
	for i, v := range a {
		out[i] = complex(v, 0)
	}

	return out
}

// nextPowerOfTwo returns the smallest power of two ≥ n (n ≥ 1).
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
