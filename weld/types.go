// Package weld: sentinel errors and welding options.
package weld

import (
	"errors"

	"github.com/katalvlaran/meshloop/order"
)

// Sentinel errors for welding operations.
var (
	// ErrNilPositions indicates a weld was requested over a nil coordinate array.
	ErrNilPositions = errors.New("weld: position array must be non-nil")

	// ErrNilRemap indicates a remap was requested with a nil table.
	ErrNilRemap = errors.New("weld: remap table must be non-nil")

	// ErrRemapRange indicates a loop references a position offset outside
	// the remap table, i.e. the loops and the welded array disagree.
	ErrRemapRange = errors.New("weld: loop references position outside the remap table")
)

// Options tunes a weld.
//
// Levels is the number of quantization steps per unit; coordinates closer
// than 1/Levels along every axis collapse into one vertex. Values below
// order.MinLevels are clamped by the quantizer.
type Options struct {
	Levels int
}

// DefaultOptions returns the standard weld configuration:
// Levels=order.DefaultLevels, collapsing only floating-point noise below
// order.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Levels: order.DefaultLevels}
}
