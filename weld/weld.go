package weld

import (
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/meshloop/core"
	"github.com/katalvlaran/meshloop/order"
)

// Positions compacts a coordinate array by quantization cell: the first
// coordinate seen in a cell becomes its representative, later ones are
// dropped. Returns the compacted array (fresh, input untouched) and an
// old→new remap table of len(pos) entries.
// Returns ErrNilPositions for a nil input; an empty input welds to an
// empty result.
// Complexity: O(n) time and memory.
func Positions(pos []vec3.T, opts Options) ([]vec3.T, []int, error) {
	if pos == nil {
		return nil, nil, ErrNilPositions
	}

	compact := make([]vec3.T, 0, len(pos))
	remap := make([]int, len(pos))
	cells := make(map[order.Cell3]int, len(pos))

	for i, p := range pos {
		cell := order.Quantize(p, opts.Levels)
		slot, seen := cells[cell]
		if !seen {
			slot = len(compact)
			compact = append(compact, p)
			cells[cell] = slot
		}
		remap[i] = slot
	}

	return compact, remap, nil
}

// RemapLoops rewrites every loop's position offsets through the remap
// table in place (texcoord and normal offsets are untouched). Nil loop
// slots are skipped. Returns ErrNilRemap for a nil table and
// ErrRemapRange when a loop references an offset the table does not
// cover; offsets already remapped before the failing one stay remapped.
// Complexity: O(total loop length).
func RemapLoops(loops []*core.Loop3, remap []int) error {
	if remap == nil {
		return ErrNilRemap
	}

	for _, l := range loops {
		if l == nil {
			continue
		}
		for i := 0; i < l.Len(); i++ {
			ix := l.At(i)
			if ix.V >= len(remap) {
				return ErrRemapRange
			}
			l.Set(i, core.NewIndex3(remap[ix.V], ix.Vt, ix.Vn))
		}
	}

	return nil
}

// Loops welds a whole mesh fragment: compacts pos and rewrites loops to
// reference the compacted array. Returns the compacted positions; the
// caller swaps them into the mesh container.
// Complexity: O(n + total loop length).
func Loops(loops []*core.Loop3, pos []vec3.T, opts Options) ([]vec3.T, error) {
	compact, remap, err := Positions(pos, opts)
	if err != nil {
		return nil, err
	}
	if err = RemapLoops(loops, remap); err != nil {
		return nil, err
	}

	return compact, nil
}
