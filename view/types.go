// Package view: sentinel errors and the Vert2/Vert3 snapshot bundles.
package view

import (
	"errors"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/meshloop/core"
	"github.com/katalvlaran/meshloop/order"
)

// Sentinel errors for view materialization and face queries.
var (
	// ErrNilAttr indicates a view was materialized against a nil attribute array.
	ErrNilAttr = errors.New("view: attribute array must be non-nil")

	// ErrAttrRange indicates a compound index references an offset past the
	// end of its attribute array.
	ErrAttrRange = errors.New("view: attribute offset out of range")

	// ErrNilLoop indicates a face was built from a nil loop.
	ErrNilLoop = errors.New("view: source loop must be non-nil")

	// ErrEmptyFace indicates a query that divides by the edge count was made
	// against a face with no edges (the zero value). Faces built via
	// NewFace3 always carry at least core.MinLoopLen edges.
	ErrEmptyFace = errors.New("view: face has no edges")

	// ErrEvalRange indicates an EvalAt parameter outside [0,1).
	ErrEvalRange = errors.New("view: eval parameter must lie in [0,1)")
)

// Vert2 is a 2D vertex snapshot: position and texture coordinate copied
// from the attribute arrays at materialization time. Comparable and
// hashable; == is structural.
type Vert2 struct {
	// Pos is the vertex position.
	Pos vec2.T

	// UV is the texture coordinate.
	UV vec2.T
}

// NewVert2 materializes a 2D vertex bundle from a compound index. Values
// are copied now and never re-read; mutating the arrays afterwards does
// not change the returned Vert2.
// Complexity: O(1).
func NewVert2(ix core.Index2, pos, uv []vec2.T) (Vert2, error) {
	if pos == nil || uv == nil {
		return Vert2{}, ErrNilAttr
	}
	if ix.V >= len(pos) || ix.Vt >= len(uv) {
		return Vert2{}, ErrAttrRange
	}

	return Vert2{Pos: pos[ix.V], UV: uv[ix.Vt]}, nil
}

// Compare orders 2D verts lexicographically with the shading attribute
// first: texcoord, then position. Follows the cmp three-way contract.
// Complexity: O(1).
func (v Vert2) Compare(o Vert2) int {
	if c := order.CompareVec2(v.UV, o.UV); c != 0 {
		return c
	}

	return order.CompareVec2(v.Pos, o.Pos)
}

// Vert3 is a 3D vertex snapshot: position, texture coordinate and normal
// copied from the attribute arrays at materialization time. Comparable
// and hashable; == is structural.
type Vert3 struct {
	// Pos is the vertex position.
	Pos vec3.T

	// UV is the texture coordinate.
	UV vec2.T

	// Normal is the vertex normal.
	Normal vec3.T
}

// NewVert3 materializes a 3D vertex bundle from a compound index; same
// snapshot semantics as NewVert2.
// Complexity: O(1).
func NewVert3(ix core.Index3, pos []vec3.T, uv []vec2.T, nrm []vec3.T) (Vert3, error) {
	if pos == nil || uv == nil || nrm == nil {
		return Vert3{}, ErrNilAttr
	}
	if ix.V >= len(pos) || ix.Vt >= len(uv) || ix.Vn >= len(nrm) {
		return Vert3{}, ErrAttrRange
	}

	return Vert3{Pos: pos[ix.V], UV: uv[ix.Vt], Normal: nrm[ix.Vn]}, nil
}

// Compare orders 3D verts lexicographically with shading attributes
// first: normal, then texcoord, then position, so verts sharing shading
// data group together before any welding by position. Follows the cmp
// three-way contract; usable directly as slices.SortFunc(vs, Vert3.Compare).
// Complexity: O(1).
func (v Vert3) Compare(o Vert3) int {
	if c := order.CompareVec3(v.Normal, o.Normal); c != 0 {
		return c
	}
	if c := order.CompareVec2(v.UV, o.UV); c != 0 {
		return c
	}

	return order.CompareVec3(v.Pos, o.Pos)
}
