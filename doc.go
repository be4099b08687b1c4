// Package meshloop is an in-memory toolkit for polygon-mesh topology:
// compound attribute indices, cyclic index loops, loop-array surgery,
// and the derived read-only views and orderings built on top of them.
//
// 🚀 What is meshloop?
//
//	A small, deterministic library for the "index loop" mesh representation:
//	a mesh owns flat attribute arrays (positions, texture coordinates,
//	normals) plus one Loop of compound indices per face. meshloop provides:
//		• Core primitives: compound indices (Index2/Index3), cyclic loops
//		  (Loop2/Loop3) with wraparound access, resize and splice
//		• Derived views: Vert, Edge and Face snapshots materialized on
//		  demand from a loop and the attribute arrays
//		• Orderings: centroid, quantized-grid and chroma comparators for
//		  deterministic geometric sorting
//		• Welding: quantized vertex deduplication with loop remapping
//
// ✨ Why choose meshloop?
//
//   - Total by design – wraparound indexing and clamping instead of
//     out-of-range errors; every operation is a bounded computation
//   - Value semantics – views are snapshots, never live adjacency graphs
//   - Deterministic – comparators give stable, reproducible orderings
//     independent of floating-point noise
//   - Pure Go – no cgo, no I/O, no hidden state
//
// Everything is organized under four subpackages:
//
//	core/  — Index2/Index3, Loop2/Loop3, ResizeLoops, Splice
//	view/  — Vert2/Vert3, Edge3, Face3 derived read-only views
//	order/ — loop-centroid, quantized-position and chroma comparators
//	weld/  — quantized vertex welding over positions and loops
//
// Quick ASCII example:
//
//	    0───1
//	    │   │        one quad face = one Loop of four compound indices,
//	    3───2        loop[4] == loop[0] == loop[-4] (wraparound)
//
// The mesh container itself (who owns the attribute arrays) is the
// caller's concern; meshloop only reads attribute arrays to materialize
// views and never resizes them.
//
//	go get github.com/katalvlaran/meshloop
package meshloop
