package order

import (
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/meshloop/core"
)

// LoopCentroid returns the arithmetic mean of the coordinates referenced
// by the loop's position offsets. Every offset is validated: ErrNilCoords
// for a nil array, ErrCoordRange for an offset past its end, ErrEmptyLoop
// when the loop has no indices to average (guarding the division).
// Complexity: O(loop length).
func LoopCentroid(l *core.Loop3, coords []vec3.T) (vec3.T, error) {
	if coords == nil {
		return vec3.T{}, ErrNilCoords
	}
	n := l.Len()
	if n < 1 {
		return vec3.T{}, ErrEmptyLoop
	}

	var sum vec3.T
	for i := 0; i < n; i++ {
		v := l.At(i).V
		if v >= len(coords) {
			return vec3.T{}, ErrCoordRange
		}
		sum.Add(&coords[v])
	}

	return sum.Scaled(1 / float64(n)), nil
}

// LoopCentroid2 is the 2D counterpart of LoopCentroid.
// Complexity: O(loop length).
func LoopCentroid2(l *core.Loop2, coords []vec2.T) (vec2.T, error) {
	if coords == nil {
		return vec2.T{}, ErrNilCoords
	}
	n := l.Len()
	if n < 1 {
		return vec2.T{}, ErrEmptyLoop
	}

	var sum vec2.T
	for i := 0; i < n; i++ {
		v := l.At(i).V
		if v >= len(coords) {
			return vec2.T{}, ErrCoordRange
		}
		sum.Add(&coords[v])
	}

	return sum.Scaled(1 / float64(n)), nil
}

// ByLoopCentroid returns a comparator ordering loops by the mean of the
// coordinates their indices reference, compared component-
// lexicographically. Each loop is averaged independently per call — an
// O(loop length) projection, so cache centroids when sorting large face
// sets (see the package doc on expensive comparators).
//
// Every referenced offset must be in range for coords; validate with
// LoopCentroid first when the mesh may be inconsistent.
func ByLoopCentroid(coords []vec3.T) func(a, b *core.Loop3) int {
	return func(a, b *core.Loop3) int {
		return CompareVec3(meanCoord3(a, coords), meanCoord3(b, coords))
	}
}

// ByLoopCentroid2 is the 2D counterpart of ByLoopCentroid.
func ByLoopCentroid2(coords []vec2.T) func(a, b *core.Loop2) int {
	return func(a, b *core.Loop2) int {
		return CompareVec2(meanCoord2(a, coords), meanCoord2(b, coords))
	}
}

// meanCoord3 averages without validation; comparator fast path.
func meanCoord3(l *core.Loop3, coords []vec3.T) vec3.T {
	var sum vec3.T
	n := l.Len()
	for i := 0; i < n; i++ {
		sum.Add(&coords[l.At(i).V])
	}

	return sum.Scaled(1 / float64(n))
}

// meanCoord2 averages without validation; comparator fast path.
func meanCoord2(l *core.Loop2, coords []vec2.T) vec2.T {
	var sum vec2.T
	n := l.Len()
	for i := 0; i < n; i++ {
		sum.Add(&coords[l.At(i).V])
	}

	return sum.Scaled(1 / float64(n))
}
