package randvar

import (
	"fmt"
	"sort"
)

// Name returns the label this variable was constructed with.
func (v *RandVar) Name() string { return v.name }

// Len returns the number of support points.
func (v *RandVar) Len() int { return len(v.x) }

// At returns the i-th support value, 0 ≤ i < Len.
func (v *RandVar) At(i int) float64 { return v.x[i] }

// ProbAt returns the probability mass at the i-th support position.
func (v *RandVar) ProbAt(i int) float64 { return v.p[i] }

// Values returns a copy of the support.
func (v *RandVar) Values() []float64 { return append([]float64(nil), v.x...) }

// Probs returns a copy of the probability vector.
func (v *RandVar) Probs() []float64 { return append([]float64(nil), v.p...) }

// Each calls fn for every (value, probability) pair in support order.
func (v *RandVar) Each(fn func(x, p float64)) {
	for i := range v.x {
		fn(v.x[i], v.p[i])
	}
}

// PMF returns P(X = u): an exact index-map lookup, or 0 when u is not on
// the support. No interpolation, no error. O(1).
func (v *RandVar) PMF(u float64) float64 {
	if i, ok := v.index[u]; ok {
		return v.p[i]
	}

	return 0
}

// CMF returns P(X ≤ u). For u on the support this is a direct O(1) read
// of the cumulative vector. Off-support values fall back to a binary
// search for the insertion point, which answers the query correctly for
// points between or outside observed outcomes:
//
//	CMF(min-1) == 0, CMF between x[i] and x[i+1] == CMF(x[i]), CMF(max) ≈ 1.
func (v *RandVar) CMF(u float64) float64 {
	if i, ok := v.index[u]; ok {
		return v.f[i+1]
	}

	return v.f[sort.SearchFloat64s(v.x, u)]
}

// String summarizes the variable by its first two moments.
func (v *RandVar) String() string {
	return fmt.Sprintf("RandVar %s: mean = %.3f +/- %.3f (std)", v.name, v.Expectation(nil), v.StdDev())
}
