// Package fft provides an in-place iterative radix-2 Fast Fourier Transform
// over complex sequences whose length is a power of two.
//
// What is it for?
//
//	The discrete Fourier transform turns convolution into pointwise
//	multiplication. probkit uses it to multiply polynomials (package poly),
//	which in turn combines probability mass functions of independent
//	random variables (package randvar).
//
// Key properties:
//   - Forward then Inverse recovers the input within ~1e-9 per component.
//   - Both transforms run in place: O(n log n) time, O(1) extra memory.
//   - Length must already be a power of two; callers are responsible for
//     zero-padding (see poly.Mul). A length of 1 is the identity.
//
// Usage:
//
//	a := []complex128{1, 2, 3, 4}
//	if err := fft.Forward(a); err != nil { ... }
//	// ... pointwise work on the spectrum ...
//	if err := fft.Inverse(a); err != nil { ... }
//
// Errors: ErrEmptySequence and ErrNotPowerOfTwo, matched via errors.Is.
// Malformed input is rejected immediately; there is no recoverable-error
// branch inside the butterfly loops.
package fft
