// Package core provides the fundamental topology primitives of meshloop:
// compound attribute indices and cyclic index loops, plus the bulk
// loop-array surgery (resize, splice) that mesh subdivision and editing
// algorithms are built from.
//
// Data model:
//
//   - Index2 / Index3 — immutable tuples of non-negative offsets into the
//     mesh container's parallel attribute arrays (position, texcoord, and
//     for the 3D variant, normal). Pure values: comparable, hashable,
//     exact equality.
//   - Loop2 / Loop3 — one polygon boundary: an ordered, cyclically
//     indexable, mutable sequence of compound indices with length ≥ 3.
//     A loop references attribute data by integer offset and never owns it.
//
// Access model:
//
//	Element access resolves any integer position through true mathematical
//	modulo, so loop.At(-1) is the last element and loop.At(n) wraps back to
//	the first. Out-of-range access is therefore never an error; requested
//	lengths below the structural minimum are silently clamped. The only
//	failure in this package is constructing a loop from a nil index
//	sequence (ErrNilIndices).
//
// Concurrency:
//
//	Loops are mutable values owned by exactly one mesh. Nothing in this
//	package locks; concurrent mutation of the same loop must be serialized
//	by the caller.
//
// See view/ for the read-only Vert/Edge/Face projections built on these
// types, and order/ for geometric comparators over them.
package core
