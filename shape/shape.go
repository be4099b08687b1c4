package shape

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/meshloop/core"
)

// Sentinel errors for shape generation.
var (
	// ErrBadDimension indicates a non-positive face count or grid dimension.
	ErrBadDimension = errors.New("shape: dimensions must be ≥ 1")
)

// Method tags used in wrapped errors.
const (
	methodGrid  = "Grid"
	methodFan   = "Fan"
	methodStrip = "Strip"
)

// Grid builds a rows×cols array of quad loops over a (rows+1)×(cols+1)
// vertex lattice numbered row-major: v(r,c) = r·(cols+1)+c. Quads are
// emitted row-major, each wound counter-clockwise starting at its
// top-left corner.
//
// Contract: rows ≥ 1 and cols ≥ 1, else ErrBadDimension (wrapped with
// the offending values). Determinism: same dimensions, same array.
// Complexity: O(rows·cols).
func Grid(rows, cols int) ([]*core.Loop3, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrBadDimension)
	}

	stride := cols + 1
	loops := make([]*core.Loop3, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tl := r*stride + c // top-left lattice vertex
			quad, err := core.Loop3From([]core.Index3{
				lattice(tl),
				lattice(tl + 1),
				lattice(tl + 1 + stride),
				lattice(tl + stride),
			})
			if err != nil {
				return nil, fmt.Errorf("%s: quad (%d,%d): %w", methodGrid, r, c, err)
			}
			loops = append(loops, quad)
		}
	}

	return loops, nil
}

// Fan builds n triangle loops sharing vertex 0 as the fan center, with
// rim vertices 1..n+1: triangle i is (0, i+1, i+2) in loop order.
//
// Contract: n ≥ 1, else ErrBadDimension.
// Complexity: O(n).
func Fan(n int) ([]*core.Loop3, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodFan, n, ErrBadDimension)
	}

	loops := make([]*core.Loop3, 0, n)
	for i := 0; i < n; i++ {
		tri, err := core.Loop3From([]core.Index3{
			lattice(0),
			lattice(i + 1),
			lattice(i + 2),
		})
		if err != nil {
			return nil, fmt.Errorf("%s: triangle %d: %w", methodFan, i, err)
		}
		loops = append(loops, tri)
	}

	return loops, nil
}

// Strip builds n triangle loops over vertices 0..n+1 with alternating
// winding, so every triangle keeps a consistent front face: even
// triangles are (i, i+1, i+2), odd ones (i+1, i, i+2).
//
// Contract: n ≥ 1, else ErrBadDimension.
// Complexity: O(n).
func Strip(n int) ([]*core.Loop3, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodStrip, n, ErrBadDimension)
	}

	loops := make([]*core.Loop3, 0, n)
	for i := 0; i < n; i++ {
		a, b := i, i+1
		if i%2 == 1 {
			a, b = b, a
		}
		tri, err := core.Loop3From([]core.Index3{
			lattice(a),
			lattice(b),
			lattice(i + 2),
		})
		if err != nil {
			return nil, fmt.Errorf("%s: triangle %d: %w", methodStrip, i, err)
		}
		loops = append(loops, tri)
	}

	return loops, nil
}

// lattice composes the fixed attribute scheme of this package: texcoord
// offsets mirror positions, normals all reference slot 0.
func lattice(v int) core.Index3 {
	return core.NewIndex3(v, v, 0)
}
