// Package poly multiplies and exponentiates real polynomials via the FFT.
//
// A polynomial is an ordered []float64 of coefficients indexed by degree.
// Multiplication is convolution of coefficient vectors, which is exactly
// how the probability mass function of a sum of two independent discrete
// random variables is obtained from the operands' pmfs; see package
// randvar for that interpretation.
//
// Operations:
//   - Mul(a, b)          — convolution in O(n log n) via two forward
//     transforms, a pointwise product and one inverse transform.
//   - Pow(p, k)          — p convolved with itself k times, computed with
//     binary exponentiation: O(log k) multiplications.
//   - FromSparse(sup, w) — dense coefficient vector from (support, weight)
//     pairs: dense[sup[i]] = w[i], zero elsewhere.
//
// Padding: both operands are zero-padded to the smallest power of two that
// holds the full product degree lenA+lenB−1, so circular convolution never
// wraps onto true coefficients. (Doubling max(lenA, lenB) before padding is
// a common conservative alternative; the minimal bound is tighter and
// behaviorally identical.)
//
// Trim policy: by default results are trimmed to the exact product degree.
// WithFullLength keeps the padded transform length, whose trailing entries
// are numerically ≈0. Both policies are exposed because neither is more
// correct than the other; choose per call site.
//
// Errors: ErrEmptySequence, ErrNegativeExponent, ErrDimensionMismatch,
// ErrNegativeSupport, ErrDuplicateSupport; matched via errors.Is.
package poly
