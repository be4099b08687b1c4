package order

import (
	"cmp"
	"math"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// Cell3 identifies the grid cell a 3D coordinate snaps into. Cells are
// plain comparable values, so they double as map keys for welding.
type Cell3 [3]int64

// Cell2 identifies the grid cell a 2D coordinate snaps into.
type Cell2 [2]int64

// clampLevels enforces the coarsest legal grid.
func clampLevels(levels int) float64 {
	if levels < MinLevels {
		levels = MinLevels
	}

	return float64(levels)
}

// Quantize snaps v onto a grid of levels steps per unit and returns the
// cell it lands in. Coordinates inside the same grid cell compare equal;
// differences below one step (1/levels) typically tie, though neighbors
// straddling a cell boundary do not. levels is clamped up to MinLevels;
// use DefaultLevels for the epsilon-derived default.
// Complexity: O(1).
func Quantize(v vec3.T, levels int) Cell3 {
	s := clampLevels(levels)

	return Cell3{
		int64(math.Floor(v[0] * s)),
		int64(math.Floor(v[1] * s)),
		int64(math.Floor(v[2] * s)),
	}
}

// Quantize2 is the 2D counterpart of Quantize.
// Complexity: O(1).
func Quantize2(v vec2.T, levels int) Cell2 {
	s := clampLevels(levels)

	return Cell2{
		int64(math.Floor(v[0] * s)),
		int64(math.Floor(v[1] * s)),
	}
}

// ByQuantized returns a comparator ordering 3D coordinates by their grid
// cell, component-lexicographically. Coordinates within the same cell
// compare equal, which absorbs floating-point noise that stays inside
// a cell while remaining deterministic across cells.
func ByQuantized(levels int) func(a, b vec3.T) int {
	return func(a, b vec3.T) int {
		return compareCell3(Quantize(a, levels), Quantize(b, levels))
	}
}

// ByQuantized2 is the 2D counterpart of ByQuantized.
func ByQuantized2(levels int) func(a, b vec2.T) int {
	return func(a, b vec2.T) int {
		ca, cb := Quantize2(a, levels), Quantize2(b, levels)
		if c := cmp.Compare(ca[0], cb[0]); c != 0 {
			return c
		}

		return cmp.Compare(ca[1], cb[1])
	}
}

// compareCell3 orders cells component-lexicographically.
func compareCell3(a, b Cell3) int {
	for i := 0; i < 3; i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return 0
}
