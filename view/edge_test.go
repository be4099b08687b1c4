package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/meshloop/view"
)

// vert is a test shorthand for building a Vert3 directly.
func vert(x, y, z float64) view.Vert3 {
	return view.Vert3{Pos: vec3.T{x, y, z}, UV: vec2.T{}, Normal: vec3.T{0, 0, 1}}
}

// TestEdge3_Length verifies the Euclidean origin→destination distance.
func TestEdge3_Length(t *testing.T) {
	e := view.NewEdge3(vert(0, 0, 0), vert(3, 4, 0))
	assert.InDelta(t, 5.0, e.Length(), 1e-12, "3-4-5 triangle edge")
}

// TestEdge3_AtAndMidpoint verifies linear interpolation along the edge.
func TestEdge3_AtAndMidpoint(t *testing.T) {
	e := view.NewEdge3(vert(0, 0, 0), vert(2, 0, 0))

	assert.Equal(t, vec3.T{0, 0, 0}, e.At(0), "t=0 is the origin")
	assert.Equal(t, vec3.T{2, 0, 0}, e.At(1), "t=1 is the destination")
	assert.Equal(t, vec3.T{1, 0, 0}, e.Midpoint(), "midpoint halves the edge")
	assert.InDelta(t, 0.5, e.At(0.25)[0], 1e-12, "quarter point")
}

// TestEdge3_StructuralEquality verifies edges compare by vertex equality.
func TestEdge3_StructuralEquality(t *testing.T) {
	a := view.NewEdge3(vert(0, 0, 0), vert(1, 0, 0))
	b := view.NewEdge3(vert(0, 0, 0), vert(1, 0, 0))
	flipped := view.NewEdge3(vert(1, 0, 0), vert(0, 0, 0))

	assert.True(t, a == b, "same vertices, same edge")
	assert.False(t, a == flipped, "orientation matters: an edge is an ordered pair")
}
