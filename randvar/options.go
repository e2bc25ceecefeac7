package randvar

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the permissible distance from 1 for pmf/cmf sums,
	// and the tolerance for near-zero probability entries.
	DefaultEpsilon = 1e-3

	// DefaultName is used when no WithName option is supplied.
	DefaultName = "rv"

	// DefaultNormalize controls whether probabilities are divided by their
	// sum before validation. false ⇒ the input is expected to already be
	// a pmf.
	DefaultNormalize = false
)

const panicEpsilonInvalid = "randvar: WithEpsilon: eps must be finite and positive"

// Option mutates the construction Options. Safe to apply repeatedly;
// last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; New accepts ...Option and resolves them
// via gatherOptions.
type Options struct {
	name      string
	normalize bool
	eps       float64
}

// WithName labels the variable; the label shows up in String output and
// chart titles, nowhere else.
func WithName(name string) Option {
	return func(o *Options) { o.name = name }
}

// WithNormalize divides the probability vector by its sum before
// validation, so any non-negative weight vector becomes a pmf.
func WithNormalize() Option {
	return func(o *Options) { o.normalize = true }
}

// WithEpsilon sets the validation tolerance: how far a pmf or cmf sum may
// drift from 1 and how negative a "non-negative" entry may be. Panics on
// non-finite or non-positive eps (programmer error, as with nonsensical
// option values elsewhere).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		name:      DefaultName,
		normalize: DefaultNormalize,
		eps:       DefaultEpsilon,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
