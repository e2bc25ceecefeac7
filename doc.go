// Package probkit computes distributions of sums of independent discrete
// random variables, fast.
//
// 🚀 What is probkit?
//
//	A small, focused library that represents probability mass functions as
//	polynomials and convolves them with a Fast Fourier Transform, so that
//	combining many independent draws costs O(n log n) instead of O(n²):
//		• fft/     — in-place iterative radix-2 FFT over complex sequences
//		• poly/    — polynomial multiplication & fast exponentiation via FFT
//		• randvar/ — validated pmf/cmf random variables, moments, transforms
//		• chart/   — pmf/cmf HTML reports rendered with go-echarts
//
// ✨ Why choose probkit?
//
//   - Fail-fast construction – a RandVar is either fully valid or never exists
//   - Immutable values – every transform or combination returns a new instance
//   - Pure Go – no cgo; deterministic, side-effect-free numeric routines
//   - Honest numerics – explicit tolerances, no silent coercion of bad input
//
// Quick sketch:
//
//	die, _ := randvar.New(
//		[]float64{1, 2, 3, 4, 5, 6},
//		[]float64{1, 1, 1, 1, 1, 1},
//		randvar.WithName("d6"), randvar.WithNormalize(),
//	)
//	total, _ := randvar.SumIID(die, 3) // distribution of 3d6
//	fmt.Println(total.Expectation(nil), total.StdDev())
//
// Dive into each package's doc.go for contracts, error sentinels and
// complexity notes.
package probkit
