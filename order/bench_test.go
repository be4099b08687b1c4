package order_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/meshloop/order"
)

// benchColors builds n deterministic pseudo-random colors.
func benchColors(n int) []colorful.Color {
	rng := rand.New(rand.NewSource(1))
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
	}

	return out
}

// BenchmarkByChroma_NaiveSort sorts recomputing the HCL projection on
// every comparison — the pattern the package doc warns against.
func BenchmarkByChroma_NaiveSort(b *testing.B) {
	src := benchColors(1000)
	less := order.ByChroma()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		colors := slices.Clone(src)
		slices.SortFunc(colors, less)
	}
}

// BenchmarkSortByChroma sorts with one projection per element
// (decorate-sort-undecorate); compare against the naive variant above.
func BenchmarkSortByChroma(b *testing.B) {
	src := benchColors(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		colors := slices.Clone(src)
		order.SortByChroma(colors)
	}
}

// BenchmarkByQuantized measures a single quantized compare.
func BenchmarkByQuantized(b *testing.B) {
	less := order.ByQuantized(order.DefaultLevels)
	u := vec3.T{0.1, 0.2, 0.3}
	v := vec3.T{0.1, 0.2, 0.4}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = less(u, v)
	}
}
