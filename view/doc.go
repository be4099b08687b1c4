// Package view materializes read-only, value-semantic projections of a
// loop plus the mesh container's attribute arrays: Vert (one vertex
// bundle), Edge3 (an origin/destination pair) and Face3 (one edge per
// adjacent index pair of a loop).
//
// Views are snapshots, never live adjacency. Each value is copied from
// the attribute arrays at the moment of materialization and does not
// observe later mutation of the source mesh; holding a view neither
// extends nor constrains the lifetime of the arrays it was built from.
// There are no cyclic references between edges, faces and vertices —
// everything is recomputed on demand from the loop, which keeps the
// whole layer free of lifetime management.
//
// Equality on Vert and Edge3 is structural (plain ==), and both are
// comparable values usable as map keys (vertex deduplication, welding).
// Vert ordering puts shading attributes before position — normal, then
// texcoord, then coordinate — so verts group by shared attributes before
// any welding by position.
//
// Face3 supports wraparound edge access like the loops it is built from,
// and orders by centroid for deterministic geometric orderings (export,
// diffing).
//
// Failure conditions are limited to construction: nil attribute arrays
// (ErrNilAttr), offsets past an array's end (ErrAttrRange), a nil source
// loop (ErrNilLoop). Queries on a properly constructed face are total,
// except the explicit guards on zero-value faces (ErrEmptyFace) and
// EvalAt parameters outside [0,1) (ErrEvalRange).
package view
