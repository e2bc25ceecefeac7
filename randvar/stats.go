package randvar

import "math"

// Expectation returns E[f(X)] = Σ f(xᵢ)·pᵢ. A nil f means the identity,
// i.e. the plain mean E[X]. O(n).
func (v *RandVar) Expectation(f func(float64) float64) float64 {
	var sum float64
	for i := range v.x {
		xi := v.x[i]
		if f != nil {
			xi = f(xi)
		}
		sum += xi * v.p[i]
	}

	return sum
}

// Variance returns Var[X] = E[X²] − E[X]².
//
// The two-moment formula is numerically adequate here: supports are
// bounded and validated, so no Welford-style accumulation is needed.
func (v *RandVar) Variance() float64 {
	mean := v.Expectation(nil)

	return v.Expectation(func(x float64) float64 { return x * x }) - mean*mean
}

// StdDev returns the standard deviation √Var[X].
func (v *RandVar) StdDev() float64 {
	return math.Sqrt(v.Variance())
}

// Range returns max(X) − min(X), the spread of the support.
func (v *RandVar) Range() float64 {
	return v.x[len(v.x)-1] - v.x[0]
}
