// Package core: central types, sentinel errors and structural constants.
// This file declares the Index2/Index3 compound-index values, the Index
// type-set constraint, and the Mod wraparound helper shared across meshloop.
package core

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for core topology operations.
var (
	// ErrNilIndices indicates a loop was constructed from a nil index sequence.
	ErrNilIndices = errors.New("core: loop requires a non-nil index sequence")
)

// Structural minimums for index sequences.
const (
	// MinLoopLen is the minimum length of a closed polygon loop.
	// A polygon needs at least three vertices; resize and construction
	// clamp requested lengths up to this value.
	MinLoopLen = 3

	// MinStripLen is the minimum length of an open, curve-like index strip
	// (two endpoints). Used by callers resizing via ResizeIndexSeq with a
	// relaxed minimum; Loop itself always enforces MinLoopLen.
	MinStripLen = 2
)

// Mod resolves i into [0,n) using true mathematical modulo, so negative
// positions count from the end: Mod(-1, 4) == 3. This is the wraparound
// rule every cyclic access in meshloop goes through. For n ≤ 0 it returns
// 0 (nothing to wrap into).
// Complexity: O(1).
func Mod[T constraints.Integer](i, n T) T {
	if n <= 0 {
		return 0
	}

	return ((i % n) + n) % n
}

// clampIdx maps negative attribute offsets to 0. Indices are offsets into
// flat attribute arrays; a negative offset is never semantically valid, so
// constructors clamp rather than reject (see the package doc of meshloop
// for the totality policy).
func clampIdx(i int) int {
	if i < 0 {
		return 0
	}

	return i
}

// Index is the type set of compound-index values a Loop may carry.
type Index interface {
	Index2 | Index3
}

// Index2 is a compound index for 2D attribute data: a position offset V
// and a texture-coordinate offset Vt into the mesh's parallel arrays.
//
// Index2 is an immutable value: comparable, hashable, with exact
// (integer) equality. Construct via NewIndex2; the zero value references
// slot 0 of both arrays.
type Index2 struct {
	// V is the offset into the position array.
	V int

	// Vt is the offset into the texture-coordinate array.
	Vt int
}

// Index2Fields is the number of stored offsets in an Index2.
const Index2Fields = 2

// NewIndex2 builds an Index2 from raw offsets. Negative inputs are
// clamped to 0 (a negative array offset is never valid).
// Complexity: O(1).
func NewIndex2(v, vt int) Index2 {
	return Index2{V: clampIdx(v), Vt: clampIdx(vt)}
}

// At returns the stored offset at position i, wrapping via Mod so both
// ix.At(0) and ix.At(-2) resolve to V, ix.At(1) and ix.At(-1) to Vt.
// Complexity: O(1).
func (ix Index2) At(i int) int {
	if Mod(i, Index2Fields) == 0 {
		return ix.V
	}

	return ix.Vt
}

// Array returns the offsets as a fixed-size array, in field order.
// The conversion is lossless: NewIndex2(a[0], a[1]) round-trips.
func (ix Index2) Array() [Index2Fields]int {
	return [Index2Fields]int{ix.V, ix.Vt}
}

// To3 promotes a 2D index to 3D by appending a zero normal offset.
// The reverse narrowing is never implicit; see Index3.To2.
func (ix Index2) To3() Index3 {
	return Index3{V: ix.V, Vt: ix.Vt, Vn: 0}
}

// Index3 is a compound index for 3D attribute data: position offset V,
// texture-coordinate offset Vt and normal offset Vn.
//
// Same value semantics as Index2: immutable, comparable, hashable.
type Index3 struct {
	// V is the offset into the position array.
	V int

	// Vt is the offset into the texture-coordinate array.
	Vt int

	// Vn is the offset into the normal array.
	Vn int
}

// Index3Fields is the number of stored offsets in an Index3.
const Index3Fields = 3

// NewIndex3 builds an Index3 from raw offsets, clamping negatives to 0.
// Complexity: O(1).
func NewIndex3(v, vt, vn int) Index3 {
	return Index3{V: clampIdx(v), Vt: clampIdx(vt), Vn: clampIdx(vn)}
}

// At returns the stored offset at position i with wraparound:
// 0→V, 1→Vt, 2→Vn, -1→Vn, 3→V, and so on.
// Complexity: O(1).
func (ix Index3) At(i int) int {
	switch Mod(i, Index3Fields) {
	case 0:
		return ix.V
	case 1:
		return ix.Vt
	default:
		return ix.Vn
	}
}

// Array returns the offsets as a fixed-size array, in field order.
func (ix Index3) Array() [Index3Fields]int {
	return [Index3Fields]int{ix.V, ix.Vt, ix.Vn}
}

// To2 explicitly narrows a 3D index to 2D, discarding the normal offset.
// Narrowing loses Vn and is therefore only available as this explicit
// call, never as a conversion.
func (ix Index3) To2() Index2 {
	return Index2{V: ix.V, Vt: ix.Vt}
}
