// Package order provides the geometric and attribute ordering policies of
// meshloop: stateless comparator constructors usable with any generic
// sort (slices.SortFunc, sort.Slice wrappers) over loops, coordinates or
// colors.
//
// All comparators follow the standard three-way contract of the cmp
// package: negative when a orders before b, zero when equal, positive
// otherwise.
//
//   - ByLoopCentroid — orders loops by the arithmetic mean of the
//     coordinates their indices reference; a deterministic,
//     geometry-driven face ordering (stable serialization, back-to-front
//     approximations).
//   - ByQuantized — snaps coordinates to a grid before comparing, so two
//     positions closer than one grid cell tie; the basis of reproducible
//     vertex deduplication independent of floating-point noise.
//   - ByChroma — orders colors by their HCL chroma. The projection runs a
//     color-space conversion per call; see the package note on expensive
//     comparators below.
//
// Expensive comparators:
//
//	Nothing in the comparator contract promises an O(1) projection.
//	ByChroma converts into HCL space on every call, and ByLoopCentroid
//	averages a full loop per argument. Callers sorting large collections
//	should cache the projected key instead of recomputing it per
//	comparison (decorate-sort-undecorate); SortByChroma shows the
//	pattern.
//
// Comparators read the attribute arrays they close over and never mutate
// loops or coordinates.
package order
