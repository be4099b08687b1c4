package core_test

import (
	"testing"

	"github.com/katalvlaran/meshloop/core"
)

// benchLoops builds n quad loops for surgery benchmarks.
func benchLoops(n int) []*core.Loop3 {
	out := make([]*core.Loop3, n)
	for i := range out {
		out[i] = core.NewLoop3(4)
	}

	return out
}

// BenchmarkLoop_At measures wraparound element access.
func BenchmarkLoop_At(b *testing.B) {
	l := core.NewLoop3(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.At(i - b.N/2) // exercise both negative and positive positions
	}
}

// BenchmarkSplice_ReplaceMiddle measures a single-face replacement in a
// 1024-loop array, the common subdivision step.
func BenchmarkSplice_ReplaceMiddle(b *testing.B) {
	loops := benchLoops(1024)
	insert := benchLoops(4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.Splice(loops, 512, 1, insert)
	}
}

// BenchmarkResizeLoops_Reuse measures a bulk resize that reuses every
// existing slot without touching loop contents.
func BenchmarkResizeLoops_Reuse(b *testing.B) {
	loops := benchLoops(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.ResizeLoops(loops, 1024, 4, false)
	}
}
