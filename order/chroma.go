package order

import (
	"cmp"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ChromaKey projects a color to its chroma in HCL space: the colorfulness
// axis, 0 for grays and growing with saturation. The projection runs a
// full sRGB→HCL conversion, so treat it as expensive relative to a plain
// float compare.
// Complexity: O(1), but with a large constant (color-space conversion).
func ChromaKey(c colorful.Color) float64 {
	_, chroma, _ := c.Hcl()

	return chroma
}

// ByChroma returns a comparator ordering colors from gray to saturated by
// their HCL chroma.
//
// The projection is recomputed on every call. Generic sorts invoke a
// comparator O(n·log n) times, so for large collections precompute the
// keys instead — SortByChroma below does exactly that.
func ByChroma() func(a, b colorful.Color) int {
	return func(a, b colorful.Color) int {
		return cmp.Compare(ChromaKey(a), ChromaKey(b))
	}
}

// SortByChroma sorts colors in place by ascending HCL chroma, computing
// each color's projection exactly once (decorate-sort-undecorate). Equal
// chroma preserves the original relative order.
// Complexity: O(n·log n) compares over precomputed keys, n conversions.
func SortByChroma(colors []colorful.Color) {
	keyed := make([]struct {
		key   float64
		color colorful.Color
	}, len(colors))
	for i, c := range colors {
		keyed[i].key = ChromaKey(c)
		keyed[i].color = c
	}

	sort.SliceStable(keyed, func(i, j int) bool { return keyed[i].key < keyed[j].key })

	for i := range keyed {
		colors[i] = keyed[i].color
	}
}
