package view

import (
	"github.com/ungerik/go3d/float64/vec3"
)

// Edge3 is a read-only pair of vertex snapshots. Produced by a Face3 or
// directly from two adjacent loop entries; exists only transiently and
// is never stored by a mesh. Equality is structural over the two
// vertices (plain ==), and orientation matters: an edge is an ordered
// pair.
type Edge3 struct {
	// Origin is the edge's starting vertex.
	Origin Vert3

	// Dest is the edge's ending vertex.
	Dest Vert3
}

// NewEdge3 builds an edge from two vertex snapshots.
func NewEdge3(origin, dest Vert3) Edge3 {
	return Edge3{Origin: origin, Dest: dest}
}

// Length returns the Euclidean distance between the origin and
// destination positions.
// Complexity: O(1).
func (e Edge3) Length() float64 {
	return vec3.Distance(&e.Origin.Pos, &e.Dest.Pos)
}

// At linearly interpolates a point along the edge: t=0 is the origin
// position, t=1 the destination. t is not clamped; values outside [0,1]
// extrapolate along the edge's line.
// Complexity: O(1).
func (e Edge3) At(t float64) vec3.T {
	return vec3.Interpolate(&e.Origin.Pos, &e.Dest.Pos, t)
}

// Midpoint returns the point halfway between origin and destination.
// Complexity: O(1).
func (e Edge3) Midpoint() vec3.T {
	return e.At(0.5)
}
