package gridgraph

import (
	"errors"

	"github.com/katalvlaran/aoc2021/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrBadVertexID indicates a vertex ID that does not encode a coordinate.
	ErrBadVertexID = errors.New("gridgraph: vertex ID must be \"x,y\"")
	// ErrNegativeCost indicates the weight function produced a negative edge cost.
	ErrNegativeCost = errors.New("gridgraph: negative cell cost")
)

// Options contains tunable parameters for converting grids to graphs.
type Options[T any] struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn grid.Connectivity
	// Weight returns the cost of stepping onto the cell at c holding v.
	Weight func(c grid.Coord, v T) int64
}

// DefaultOptions returns Options with Conn=grid.Conn4 and unit cost per step.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Conn:   grid.Conn4,
		Weight: func(grid.Coord, T) int64 { return 1 },
	}
}
