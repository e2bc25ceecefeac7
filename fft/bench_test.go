package fft_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/probkit/probkit/fft"
)

// BenchmarkForward measures the in-place transform across typical sizes.
func BenchmarkForward(b *testing.B) {
	for _, n := range []int{256, 1024, 4096} {
		rng := rand.New(rand.NewSource(1))
		src := make([]complex128, n)
		for i := range src {
			src[i] = complex(rng.Float64(), rng.Float64())
		}
		buf := make([]complex128, n)

		b.Run(fmt.Sprintf("n%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(buf, src)
				_ = fft.Forward(buf)
			}
		})
	}
}

// BenchmarkRoundTrip measures Forward followed by Inverse.
func BenchmarkRoundTrip(b *testing.B) {
	const n = 1024
	rng := rand.New(rand.NewSource(1))
	src := make([]complex128, n)
	for i := range src {
		src[i] = complex(rng.Float64(), rng.Float64())
	}
	buf := make([]complex128, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		_ = fft.Forward(buf)
		_ = fft.Inverse(buf)
	}
}
