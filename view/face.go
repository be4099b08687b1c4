package view

import (
	"math"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/meshloop/core"
	"github.com/katalvlaran/meshloop/order"
)

// Face3 is a read-only snapshot of one polygon: an ordered sequence of
// edges, one per adjacent pair of the source loop's compound indices
// (the last edge wraps back to the first vertex). Like the loop it came
// from, edge access wraps for any integer position.
//
// A Face3 is computed, never stored: build it on demand from the current
// loop and attribute arrays, use it, drop it. It does not observe mesh
// mutation after construction.
type Face3 struct {
	edges []Edge3
}

// NewFace3 materializes a face from a loop and the mesh's attribute
// arrays. Every loop entry is dereferenced exactly once; adjacent
// vertex snapshots are paired into edges in loop order.
// Returns ErrNilLoop for a nil loop and propagates ErrNilAttr /
// ErrAttrRange from vertex materialization.
// Complexity: O(loop length).
func NewFace3(l *core.Loop3, pos []vec3.T, uv []vec2.T, nrm []vec3.T) (Face3, error) {
	if l == nil {
		return Face3{}, ErrNilLoop
	}

	n := l.Len()
	verts := make([]Vert3, n)
	for i := 0; i < n; i++ {
		v, err := NewVert3(l.At(i), pos, uv, nrm)
		if err != nil {
			return Face3{}, err
		}
		verts[i] = v
	}

	edges := make([]Edge3, n)
	for i := 0; i < n; i++ {
		edges[i] = NewEdge3(verts[i], verts[core.Mod(i+1, n)])
	}

	return Face3{edges: edges}, nil
}

// Len returns the number of edges (equal to the source loop's length).
// Complexity: O(1).
func (f Face3) Len() int { return len(f.edges) }

// EdgeAt returns the edge at position i with wraparound: f.EdgeAt(-1) is
// the closing edge, f.EdgeAt(f.Len()) the first again.
// Complexity: O(1).
func (f Face3) EdgeAt(i int) Edge3 {
	return f.edges[core.Mod(i, len(f.edges))]
}

// Verts returns the face's vertex snapshots in loop order (each edge's
// origin).
// Complexity: O(n).
func (f Face3) Verts() []Vert3 {
	out := make([]Vert3, len(f.edges))
	for i, e := range f.edges {
		out[i] = e.Origin
	}

	return out
}

// Center returns the arithmetic mean of all edge origins' positions.
// ErrEmptyFace guards the division on a zero-value face; faces built via
// NewFace3 always have edges.
// Complexity: O(n).
func (f Face3) Center() (vec3.T, error) {
	if len(f.edges) < 1 {
		return vec3.T{}, ErrEmptyFace
	}

	var sum vec3.T
	for i := range f.edges {
		sum.Add(&f.edges[i].Origin.Pos)
	}

	return sum.Scaled(1 / float64(len(f.edges))), nil
}

// Perimeter returns the sum of all edge lengths.
// Complexity: O(n).
func (f Face3) Perimeter() float64 {
	var total float64
	for i := range f.edges {
		total += f.edges[i].Length()
	}

	return total
}

// EvalAt maps t in [0,1) onto the face boundary: t scaled by the edge
// count selects an edge (floor) and the fractional remainder linearly
// interpolates along it. The interpolation is linear per edge, not
// geodesic. Returns ErrEvalRange for t outside [0,1) and ErrEmptyFace on
// a zero-value face.
// Complexity: O(1).
func (f Face3) EvalAt(t float64) (vec3.T, error) {
	if len(f.edges) < 1 {
		return vec3.T{}, ErrEmptyFace
	}
	if t < 0 || t >= 1 {
		return vec3.T{}, ErrEvalRange
	}

	scaled := t * float64(len(f.edges))
	k := int(math.Floor(scaled))
	if k >= len(f.edges) { // t just below 1 can round scaled up to the edge count
		k = len(f.edges) - 1
	}

	return f.edges[k].At(scaled - float64(k)), nil
}

// Compare orders faces by centroid, component-lexicographically — the
// deterministic geometric ordering used for export and diffing. The
// zero-value face averages to the origin for comparison purposes.
// Follows the cmp three-way contract.
// Complexity: O(n).
func (f Face3) Compare(o Face3) int {
	return order.CompareVec3(f.center(), o.center())
}

// center is Compare's total projection: zero vector for an empty face.
func (f Face3) center() vec3.T {
	c, err := f.Center()
	if err != nil {
		return vec3.T{}
	}

	return c
}
