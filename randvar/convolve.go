package randvar

import (
	"fmt"
	"math"

	"github.com/probkit/probkit/poly"
)

// integerTol bounds how far a support value may sit from the nearest
// integer and still be accepted by the polynomial encoding.
const integerTol = 1e-9

// noiseTol bounds the negative floating-point noise the inverse FFT may
// leave on coefficients that are mathematically zero; anything in
// (-noiseTol, 0) is clamped to 0 before validation.
const noiseTol = 1e-9

// Sum returns the distribution of A+B for independent A and B.
//
// Both pmfs are encoded as dense polynomials over their integer supports
// (poly.FromSparse), multiplied via the FFT (poly.Mul), and the product's
// coefficient vector is reinterpreted as the pmf over the summed support
// 0..degree. Outcomes that cannot occur keep an explicit zero mass.
//
// Supports must be non-negative integer-valued (within 1e-9):
// ErrNonIntegerSupport otherwise. The result is named "a+b" unless
// WithName overrides.
//
// Complexity: O(m log m) for m = max(A)+max(B)+1.
func Sum(a, b *RandVar, opts ...Option) (*RandVar, error) {
	pa, err := densePmf(a)
	if err != nil {
		return nil, err
	}
	pb, err := densePmf(b)
	if err != nil {
		return nil, err
	}

	coeffs, err := poly.Mul(pa, pb)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s+%s", a.name, b.name)

	return fromDense(coeffs, append([]Option{WithName(name), WithEpsilon(a.eps)}, opts...))
}

// SumIID returns the distribution of the sum of n independent copies of
// v, computed as the n-th convolution power of its pmf polynomial:
// O(log n) FFT multiplications via poly.Pow.
//
// n must be ≥ 1: ErrNonPositiveCount otherwise. (n = 0 would be the
// degenerate point mass at zero; nothing in this library ever forms it.)
func SumIID(v *RandVar, n int, opts ...Option) (*RandVar, error) {
	if n < 1 {
		return nil, ErrNonPositiveCount
	}

	pv, err := densePmf(v)
	if err != nil {
		return nil, err
	}

	coeffs, err := poly.Pow(pv, n)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%dx%s", n, v.name)

	return fromDense(coeffs, append([]Option{WithName(name), WithEpsilon(v.eps)}, opts...))
}

// densePmf encodes v's pmf as a dense coefficient vector indexed by
// outcome value. Supports must round cleanly to non-negative integers.
func densePmf(v *RandVar) ([]float64, error) {
	support := make([]int, len(v.x))
	for i, xi := range v.x {
		r := math.Round(xi)
		if r < 0 || math.Abs(xi-r) > integerTol {
			return nil, ErrNonIntegerSupport
		}
		support[i] = int(r)
	}

	return poly.FromSparse(support, v.p)
}

// fromDense reinterprets a convolution coefficient vector as a pmf over
// the support 0..len(coeffs)-1, clamping negative FFT noise first.
func fromDense(coeffs []float64, opts []Option) (*RandVar, error) {
	support := make([]float64, len(coeffs))
	for i := range coeffs {
		support[i] = float64(i)
		if coeffs[i] < 0 && coeffs[i] > -noiseTol {
			coeffs[i] = 0
		}
	}

	return New(support, coeffs, opts...)
}
