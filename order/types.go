// Package order: sentinel errors, quantization defaults and the
// component-lexicographic vector compare primitives every policy in this
// package (and the view package) is built on.
package order

import (
	"cmp"
	"errors"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// Sentinel errors for ordering operations.
var (
	// ErrNilCoords indicates a centroid was requested against a nil
	// coordinate array.
	ErrNilCoords = errors.New("order: coordinate array must be non-nil")

	// ErrEmptyLoop indicates a centroid over a zero-length loop; the mean
	// would divide by zero. By construction loops never shrink below
	// core.MinLoopLen, so seeing this error means invalid state upstream.
	ErrEmptyLoop = errors.New("order: cannot average a zero-length loop")

	// ErrCoordRange indicates a loop references an offset past the end of
	// the coordinate array.
	ErrCoordRange = errors.New("order: loop references coordinate out of range")
)

// Quantization policy defaults.
const (
	// DefaultEpsilon is the tolerance the default grid is derived from:
	// coordinates closer than this along an axis land in the same cell.
	DefaultEpsilon = 1e-6

	// DefaultLevels is the default number of grid steps per unit,
	// 1/DefaultEpsilon.
	DefaultLevels = 1_000_000

	// MinLevels is the coarsest legal grid. Quantize clamps smaller (or
	// non-positive) level counts up to this value.
	MinLevels = 2
)

// CompareVec2 orders two vectors component-lexicographically: by X, then
// by Y. Exact float comparison, no tolerance; use ByQuantized2 when
// floating-point noise matters.
// Complexity: O(1).
func CompareVec2(a, b vec2.T) int {
	if c := cmp.Compare(a[0], b[0]); c != 0 {
		return c
	}

	return cmp.Compare(a[1], b[1])
}

// CompareVec3 orders two vectors component-lexicographically: by X, then
// Y, then Z. Exact float comparison, no tolerance.
// Complexity: O(1).
func CompareVec3(a, b vec3.T) int {
	for i := 0; i < 3; i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return 0
}
