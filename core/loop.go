package core

// Loop is one polygon boundary: an ordered, cyclically indexable, mutable
// sequence of compound indices. The generic implementation is shared by
// the 2D and 3D variants; use the Loop2/Loop3 aliases and their
// constructors rather than instantiating Loop directly.
//
// Invariants:
//   - length never drops below MinLoopLen through construction or Resize;
//   - At/Set resolve any integer position via Mod (true modulo), so
//     out-of-range access is never an error;
//   - a loop holds offsets into attribute arrays it does not own.
type Loop[I Index] struct {
	idx []I
}

// Loop2 is a polygon boundary over 2D compound indices (position+texcoord).
type Loop2 = Loop[Index2]

// Loop3 is a polygon boundary over 3D compound indices
// (position+texcoord+normal).
type Loop3 = Loop[Index3]

// NewLoop constructs a loop of n zero-valued indices. Lengths below
// MinLoopLen are clamped up to it.
// Complexity: O(n).
func NewLoop[I Index](n int) *Loop[I] {
	if n < MinLoopLen {
		n = MinLoopLen
	}

	return &Loop[I]{idx: make([]I, n)}
}

// NewLoop2 constructs a 2D loop of n zero-valued indices (n clamped up to
// MinLoopLen).
func NewLoop2(n int) *Loop2 { return NewLoop[Index2](n) }

// NewLoop3 constructs a 3D loop of n zero-valued indices (n clamped up to
// MinLoopLen).
func NewLoop3(n int) *Loop3 { return NewLoop[Index3](n) }

// LoopFrom constructs a loop from an explicit index sequence. The
// sequence is copied, so the caller keeps ownership of seq. A nil
// sequence returns ErrNilIndices; a sequence shorter than MinLoopLen is
// padded to the minimum with zero-valued indices (the same clamping
// policy Resize applies).
// Complexity: O(len(seq)).
func LoopFrom[I Index](seq []I) (*Loop[I], error) {
	if seq == nil {
		return nil, ErrNilIndices
	}
	n := len(seq)
	if n < MinLoopLen {
		n = MinLoopLen
	}
	idx := make([]I, n)
	copy(idx, seq)

	return &Loop[I]{idx: idx}, nil
}

// Loop2From constructs a 2D loop from an explicit sequence; see LoopFrom.
func Loop2From(seq []Index2) (*Loop2, error) { return LoopFrom(seq) }

// Loop3From constructs a 3D loop from an explicit sequence; see LoopFrom.
func Loop3From(seq []Index3) (*Loop3, error) { return LoopFrom(seq) }

// Len returns the number of indices in the loop.
// Complexity: O(1).
func (l *Loop[I]) Len() int { return len(l.idx) }

// At returns the index at position i. Any integer resolves to a valid
// slot via Mod, so l.At(-1) is the last index and l.At(l.Len()) wraps to
// the first.
// Complexity: O(1).
func (l *Loop[I]) At(i int) I {
	return l.idx[Mod(i, len(l.idx))]
}

// Set reassigns the index at position i (wraparound-resolved), writing
// through to the backing sequence. Used when an edit moves a referenced
// attribute and the loop must follow.
// Complexity: O(1).
func (l *Loop[I]) Set(i int, ix I) {
	l.idx[Mod(i, len(l.idx))] = ix
}

// Indices returns a copy of the loop's index sequence in order. Mutating
// the returned slice does not affect the loop; use Set for that.
// Complexity: O(n).
func (l *Loop[I]) Indices() []I {
	out := make([]I, len(l.idx))
	copy(out, l.idx)

	return out
}

// Clone returns a deep copy of the loop with its own backing sequence.
// Complexity: O(n).
func (l *Loop[I]) Clone() *Loop[I] {
	return &Loop[I]{idx: l.Indices()}
}

// Resize grows or shrinks the loop to n indices, clamping n up to
// MinLoopLen. Growth appends zero-valued indices; shrinking removes from
// the tail. Retained elements are preserved unchanged, and
// Resize(l.Len()) is a no-op.
// Complexity: O(n).
func (l *Loop[I]) Resize(n int) {
	l.idx = ResizeIndexSeq(l.idx, n, MinLoopLen)
}

// ResizeIndexSeq is the shared resize primitive under Loop.Resize: it
// returns seq grown with zero-valued indices or truncated at the tail to
// length max(n, min). Closed loops pass MinLoopLen; open, curve-like
// index strips pass MinStripLen. Retained elements are never touched.
// Complexity: O(n).
func ResizeIndexSeq[I Index](seq []I, n, min int) []I {
	if n < min {
		n = min
	}
	switch {
	case n < len(seq):
		return seq[:n]
	case n > len(seq):
		grown := make([]I, n)
		copy(grown, seq)

		return grown
	default:
		return seq
	}
}
