package core_test

import (
	"testing"

	"github.com/katalvlaran/meshloop/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// namedLoops builds one loop per v offset so tests can identify loops by
// the V field of their first index.
func namedLoops(vs ...int) []*core.Loop3 {
	out := make([]*core.Loop3, len(vs))
	for i, v := range vs {
		l := core.NewLoop3(core.MinLoopLen)
		l.Set(0, core.NewIndex3(v, 0, 0))
		out[i] = l
	}

	return out
}

// firstVs projects a loop array back to the v offsets namedLoops planted.
func firstVs(loops []*core.Loop3) []int {
	out := make([]int, len(loops))
	for i, l := range loops {
		out[i] = l.At(0).V
	}

	return out
}

// TestResizeLoops_ReusesIdentities verifies existing loops survive a bulk
// resize by pointer identity, untouched unless resizeExisting is set.
func TestResizeLoops_ReusesIdentities(t *testing.T) {
	loops := namedLoops(10, 20)
	out := core.ResizeLoops(loops, 4, 5, false)

	require.Len(t, out, 4, "result must have exactly size slots")
	assert.Same(t, loops[0], out[0], "slot 0 reused in place, not copied")
	assert.Same(t, loops[1], out[1], "slot 1 reused in place, not copied")
	assert.Equal(t, core.MinLoopLen, out[0].Len(), "reused loop not resized without resizeExisting")
	assert.Equal(t, 5, out[2].Len(), "fresh slots are constructed at vertsPerLoop")
	assert.Equal(t, 5, out[3].Len(), "fresh slots are constructed at vertsPerLoop")
}

// TestResizeLoops_ResizeExisting verifies resizeExisting resizes each
// reused loop's own index sequence to vertsPerLoop.
func TestResizeLoops_ResizeExisting(t *testing.T) {
	loops := namedLoops(10)
	out := core.ResizeLoops(loops, 2, 6, true)

	assert.Same(t, loops[0], out[0], "identity still reused when resizing")
	assert.Equal(t, 6, out[0].Len(), "reused loop resized to vertsPerLoop")
	assert.Equal(t, core.NewIndex3(10, 0, 0), out[0].At(0), "resize preserves the retained prefix")
}

// TestResizeLoops_ShrinkAndDegenerate verifies truncation and the
// negative-size edge case.
func TestResizeLoops_ShrinkAndDegenerate(t *testing.T) {
	loops := namedLoops(1, 2, 3)

	out := core.ResizeLoops(loops, 1, 4, false)
	require.Len(t, out, 1)
	assert.Same(t, loops[0], out[0], "surviving slot keeps its identity")

	assert.Empty(t, core.ResizeLoops(loops, -2, 4, false), "negative size yields an empty array")
}

// TestResizeLoops_FillsNilSlots verifies nil entries are replaced with
// fresh loops instead of being carried over.
func TestResizeLoops_FillsNilSlots(t *testing.T) {
	loops := []*core.Loop3{nil, core.NewLoop3(3)}
	out := core.ResizeLoops(loops, 2, 4, false)

	require.NotNil(t, out[0], "nil slot must be filled")
	assert.Equal(t, 4, out[0].Len(), "filled slot constructed at vertsPerLoop")
	assert.Same(t, loops[1], out[1], "non-nil slot reused")
}

// TestSplice_FullReplacement verifies deletions ≥ len discards the whole
// array and returns a fresh copy of insert, regardless of position.
func TestSplice_FullReplacement(t *testing.T) {
	loops := namedLoops(1, 2, 3)
	insert := namedLoops(7, 8)

	for _, at := range []int{0, 1, 2, -1, 100} {
		out := core.Splice(loops, at, 5, insert)
		assert.Equal(t, []int{7, 8}, firstVs(out), "at=%d: deletions ≥ len replaces everything", at)
	}

	// The returned array is a copy of insert, not insert itself.
	out := core.Splice(loops, 0, 5, insert)
	out[0] = loops[0]
	assert.Same(t, insert[0], core.Splice(loops, 0, 5, insert)[0],
		"mutating a previous result must not corrupt insert")
}

// TestSplice_PureInsert verifies deletions < 1 inserts without removal:
// [A,B,C] + insert [X,Y] at 1 → [A,X,Y,B,C].
func TestSplice_PureInsert(t *testing.T) {
	loops := namedLoops(1, 2, 3)
	insert := namedLoops(8, 9)

	out := core.Splice(loops, 1, 0, insert)
	assert.Equal(t, []int{1, 8, 9, 2, 3}, firstVs(out), "pure insert at position 1")

	out = core.Splice(loops, 1, -4, insert)
	assert.Equal(t, []int{1, 8, 9, 2, 3}, firstVs(out), "negative deletions behave as pure insert")

	assert.Equal(t, []int{1, 2, 3}, firstVs(loops), "the original array is never mutated")
}

// TestSplice_AppendPosition verifies the position resolves modulo len+1,
// so at == len is a legal one-past-the-end append.
func TestSplice_AppendPosition(t *testing.T) {
	loops := namedLoops(1, 2, 3)
	insert := namedLoops(9)

	out := core.Splice(loops, 3, 0, insert)
	assert.Equal(t, []int{1, 2, 3, 9}, firstVs(out), "at=len appends")

	out = core.Splice(loops, -1, 0, insert)
	assert.Equal(t, []int{1, 2, 3, 9}, firstVs(out), "at=-1 wraps to one-past-the-end in mod len+1")

	out = core.Splice(loops, 4, 0, insert)
	assert.Equal(t, []int{9, 1, 2, 3}, firstVs(out), "at=len+1 wraps to the front")
}

// TestSplice_ReplaceInMiddle verifies the replace path:
// [A,B,C,D] at=1 deletions=2 insert=[X] → [A,X,D].
func TestSplice_ReplaceInMiddle(t *testing.T) {
	loops := namedLoops(1, 2, 3, 4)
	insert := namedLoops(9)

	out := core.Splice(loops, 1, 2, insert)
	assert.Equal(t, []int{1, 9, 4}, firstVs(out), "replace two in the middle")
	assert.Same(t, loops[0], out[0], "prefix pointers carried over")
	assert.Same(t, loops[3], out[2], "suffix pointers carried over")
}

// TestSplice_DeletionsClampToTail verifies deletions past the tail (but
// below len) remove only what exists after the resolved position.
func TestSplice_DeletionsClampToTail(t *testing.T) {
	loops := namedLoops(1, 2, 3, 4)
	insert := namedLoops(9)

	out := core.Splice(loops, 2, 3, insert)
	assert.Equal(t, []int{1, 2, 9}, firstVs(out), "deletions clamp to the tail length")
}

// TestSplice_EmptyArray verifies splicing into an empty array yields a
// copy of insert under every branch.
func TestSplice_EmptyArray(t *testing.T) {
	insert := namedLoops(5)

	out := core.Splice(nil, 3, 0, insert)
	assert.Equal(t, []int{5}, firstVs(out), "insert into empty array")

	out = core.Splice([]*core.Loop3{}, 0, 2, insert)
	assert.Equal(t, []int{5}, firstVs(out), "deletions ≥ 0 == len on empty array")
}
