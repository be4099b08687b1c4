// Package shape builds deterministic loop arrays for primitive mesh
// topologies: quad grids, triangle fans and triangle strips. The
// generators produce only topology — arrays of core.Loop3 referencing a
// documented vertex numbering — and never attribute data; pair them with
// whatever coordinate lattice the caller owns.
//
// Design contract:
//   - Validate parameters early and return sentinel errors; never panic.
//   - Determinism: the same parameters always yield identical loop
//     arrays, with a fixed, documented emission order (row-major for
//     grids, rim order for fans and strips).
//   - Texcoord offsets mirror position offsets (Vt = V) and normals all
//     reference slot 0; re-index afterwards if your mesh stores
//     attributes differently.
//
// The generators are handy as subdivision seeds and test fixtures:
// Grid(1,1) is a single quad loop, Fan(n) triangulates a polygon rim,
// Strip(n) is the classic alternating-winding band.
package shape
