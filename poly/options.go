package poly

// DefaultTrim controls whether results are cut back to the exact product
// degree (lenA+lenB−1 coefficients). When false, results keep the padded
// power-of-two transform length with trailing entries numerically ≈0.
const DefaultTrim = true

// Option mutates the per-call Options. Safe to apply repeatedly;
// last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	trim bool
}

// WithTrim cuts the result back to the exact product degree (the default).
func WithTrim() Option {
	return func(o *Options) { o.trim = true }
}

// WithFullLength keeps the padded power-of-two transform length in the
// result. Trailing entries beyond the true degree are numerically ≈0.
func WithFullLength() Option {
	return func(o *Options) { o.trim = false }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{trim: DefaultTrim}
	for _, set := range user {
		set(&o)
	}

	return o
}
