// Package randvar implements validated discrete random variables and the
// FFT-backed combination of independent ones.
//
// 🚀 What is a RandVar?
//
//	An immutable pairing of a strictly increasing support (the outcome
//	values) with a probability mass function over it. Construction is
//	fail-fast: the support must be sorted and duplicate-free, the pmf
//	non-negative and summing to 1 within tolerance, and the derived
//	cumulative vector monotone with terminal value ≈1. Either every check
//	passes and the instance is usable forever, or New returns a sentinel
//	error and no instance exists.
//
// ✨ Key features:
//   - point queries: PMF (exact lookup, 0 off support) and CMF
//     (P(X ≤ u), with a binary-search fallback for off-support u)
//   - change of variable: Transform(f) groups colliding images and sums
//     their mass, the correct "function of a random variable" operator
//   - pointwise reweighting: Map(f) rewrites the probability vector in
//     place of position, keeping the support
//   - moment statistics: Expectation, Variance, StdDev, Range
//   - combination: Sum(a, b) and SumIID(v, n) convolve pmfs through
//     package poly, turning O(n²) combination into O(n log n)
//
// ⚙️ Usage:
//
//	payout, err := randvar.New(
//		[]float64{1, 5, 10},
//		[]float64{0.5, 0.3, 0.2},
//		randvar.WithName("payout"),
//	)
//	if err != nil { ... }
//	payout.CMF(7)           // 0.8, P(payout ≤ 7)
//	payout.Expectation(nil) // 4.0
//
// Every operation is a pure function over immutable values: no locks, no
// I/O, no shared mutable state beyond the once-built value→index map.
// Batches of combinations are embarrassingly parallel across calls.
//
// Tolerances: validation uses DefaultEpsilon = 1e-3, injectable per
// construction via WithEpsilon (a parameter, never a mutable global).
package randvar
