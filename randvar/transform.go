package randvar

import "sort"

// Transform returns the distribution of f(X): f is applied to every
// support value, outcomes mapping to the same image are grouped and their
// probability mass summed, and the result ranges over the sorted distinct
// images. This is the "function of a random variable" operator; total
// mass is preserved for any f.
//
// The result inherits the receiver's name and tolerance unless overridden
// via opts.
//
// Complexity: O(n log n) for the image sort.
func (v *RandVar) Transform(f func(float64) float64, opts ...Option) (*RandVar, error) {
	mass := make(map[float64]float64, len(v.x))
	for i, xi := range v.x {
		mass[f(xi)] += v.p[i]
	}

	images := make([]float64, 0, len(mass))
	for y := range mass {
		images = append(images, y)
	}
	sort.Float64s(images)

	probs := make([]float64, len(images))
	for i, y := range images {
		probs[i] = mass[y]
	}

	return New(images, probs, v.inherited(opts)...)
}

// Map returns a variable with the same support and probability vector
// p'[i] = f(p[i]), a direct positional reweighting. It does not change
// what the outcome values represent; for a change of variable use
// Transform.
//
// The caller is responsible for any renormalization the reweighting
// needs: pass WithNormalize when f does not preserve total mass,
// otherwise construction fails validation like any other invalid pmf.
func (v *RandVar) Map(f func(float64) float64, opts ...Option) (*RandVar, error) {
	probs := make([]float64, len(v.p))
	for i, pi := range v.p {
		probs[i] = f(pi)
	}

	return New(v.x, probs, v.inherited(opts)...)
}

// inherited prepends the receiver's name and tolerance so derived
// variables keep them unless the caller overrides (last-writer-wins).
func (v *RandVar) inherited(user []Option) []Option {
	return append([]Option{WithName(v.name), WithEpsilon(v.eps)}, user...)
}
