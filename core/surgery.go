// Package core: bulk surgery over loop arrays. A mesh owns one loop per
// face; subdivision and editing algorithms reshape that array with the
// two primitives here. ResizeLoops reuses loop identities in place
// (arena-style slot reuse) so long-lived loops survive iterative
// subdivision passes; Splice replaces a wraparound-addressed sub-range
// and returns a fresh array, leaving the original untouched.
package core

// ResizeLoops produces a loop array of exactly size slots, each holding
// vertsPerLoop indices.
//
// Slot policy, per position i in [0,size):
//   - an existing non-nil loops[i] is reused in place (same *Loop
//     identity, no copy) and left untouched unless resizeExisting is
//     set, in which case its own index sequence is resized to
//     vertsPerLoop;
//   - a missing or nil slot is filled with a freshly constructed loop of
//     vertsPerLoop zero-valued indices.
//
// A negative size yields an empty array; vertsPerLoop is clamped up to
// MinLoopLen by the loop constructor and Resize.
// Complexity: O(size · vertsPerLoop) worst case, O(size) when slots are
// reused without resizing.
func ResizeLoops[I Index](loops []*Loop[I], size, vertsPerLoop int, resizeExisting bool) []*Loop[I] {
	if size < 0 {
		size = 0
	}
	out := make([]*Loop[I], size)
	for i := 0; i < size; i++ {
		if i < len(loops) && loops[i] != nil {
			out[i] = loops[i]
			if resizeExisting {
				out[i].Resize(vertsPerLoop)
			}

			continue
		}
		out[i] = NewLoop[I](vertsPerLoop)
	}

	return out
}

// Splice removes deletions loops starting at the wraparound-resolved
// position at, inserts the insert sequence there, and returns the result
// as a new array. The input array is never mutated; loop pointers are
// carried over, not cloned.
//
// Edge-case policy, in priority order:
//  1. deletions ≥ len(loops): the whole array is discarded and a fresh
//     copy of insert is returned, regardless of at.
//  2. deletions < 1 (negative counts included): pure insertion — nothing
//     is removed.
//  3. otherwise exactly deletions elements are replaced, clamped to the
//     tail, preserving the untouched prefix and suffix in order.
//
// The position is resolved modulo len(loops)+1, so at may legally point
// one-past-the-end to express an append.
// Complexity: O(len(loops) + len(insert)).
func Splice[I Index](loops []*Loop[I], at, deletions int, insert []*Loop[I]) []*Loop[I] {
	if deletions >= len(loops) {
		out := make([]*Loop[I], len(insert))
		copy(out, insert)

		return out
	}

	pos := Mod(at, len(loops)+1)
	if deletions < 1 {
		deletions = 0
	}
	if deletions > len(loops)-pos {
		deletions = len(loops) - pos
	}

	out := make([]*Loop[I], 0, len(loops)-deletions+len(insert))
	out = append(out, loops[:pos]...)
	out = append(out, insert...)
	out = append(out, loops[pos+deletions:]...)

	return out
}
