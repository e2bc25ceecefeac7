package randvar

import "math"

// New constructs a validated random variable over the given support.
//
// Validation order (first failure wins, each with its own sentinel):
//  1. support non-empty                      — ErrEmptySupport
//  2. len(support) == len(probs)             — ErrDimensionMismatch
//  3. support strictly increasing            — ErrUnsortedSupport
//  4. probs is a pmf (non-negative within
//     eps, sum within eps of 1)              — ErrInvalidPmf
//  5. derived cumulative vector is a cmf     — ErrInvalidCmf (internal
//     consistency; unreachable when 4 passed)
//
// With WithNormalize, probs is divided by its sum before step 4, so any
// non-negative weighting works as input. Both slices are copied; the
// caller keeps ownership of its arguments and the returned RandVar is
// immutable.
//
// Complexity: O(n) time and space.
func New(support, probs []float64, opts ...Option) (*RandVar, error) {
	o := gatherOptions(opts...)

	n := len(support)
	if n == 0 {
		return nil, ErrEmptySupport
	}
	if len(probs) != n {
		return nil, ErrDimensionMismatch
	}

	x := append([]float64(nil), support...)
	p := append([]float64(nil), probs...)

	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return nil, ErrUnsortedSupport
		}
	}

	if o.normalize {
		var s float64
		for _, v := range p {
			s += v
		}
		if s <= 0 {
			return nil, ErrInvalidPmf
		}
		for i := range p {
			p[i] /= s
		}
	}

	if !isPmf(p, o.eps) {
		return nil, ErrInvalidPmf
	}

	f := prefixSum(p)
	if !isCmf(f, o.eps) {
		return nil, ErrInvalidCmf
	}

	index := make(map[float64]int, n)
	for i, v := range x {
		index[v] = i
	}

	return &RandVar{name: o.name, x: x, p: p, f: f, index: index, eps: o.eps}, nil
}

// isPmf reports whether p is non-negative (within eps) and sums to 1
// within eps.
func isPmf(p []float64, eps float64) bool {
	var sum float64
	for _, v := range p {
		if v < -eps {
			return false
		}
		sum += v
	}

	return math.Abs(sum-1) < eps
}

// isCmf reports whether f starts at 0, is non-decreasing within eps and
// terminates within eps of 1.
func isCmf(f []float64, eps float64) bool {
	if f[0] != 0 {
		return false
	}
	for i := 1; i < len(f); i++ {
		if f[i] < f[i-1]-eps {
			return false
		}
	}

	return math.Abs(f[len(f)-1]-1) < eps
}

// prefixSum returns the running totals of p with a leading zero:
// out[i] = p[0] + ... + p[i-1], len(out) = len(p)+1.
func prefixSum(p []float64) []float64 {
	out := make([]float64, len(p)+1)
	for i, v := range p {
		out[i+1] = out[i] + v
	}

	return out
}
