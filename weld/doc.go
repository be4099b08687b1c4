// Package weld deduplicates mesh vertices: positions that land in the
// same quantization cell collapse into a single shared coordinate, and
// the loops that referenced them are rewritten in place to follow.
//
// Welding runs in two steps that can also be used separately:
//
//  1. Positions — compact a coordinate array by grid cell (first
//     occurrence per cell survives) and produce an old→new remap table;
//  2. RemapLoops — push the remap table through every loop's position
//     offsets via Loop.Set, leaving texcoord and normal offsets alone.
//
// Because the grid comes from order.Quantize, welding is reproducible
// independent of floating-point noise: coordinates closer than one grid
// step per axis always collapse, exact bit patterns never matter. Pick
// the cell size via Options.Levels (steps per unit); DefaultOptions uses
// the epsilon-derived order.DefaultLevels.
//
// The input coordinate array is never mutated — the compacted array is
// fresh — but loops are edited in place, matching the ownership model of
// core: loops are the mesh's mutable values, attribute arrays are
// replaced wholesale by the caller after a weld.
package weld
