package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrShapeMismatch indicates the cell list does not hold exactly width*height values.
	ErrShapeMismatch = errors.New("grid: cell count does not match dimensions")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Coord identifies one cell by column X and row Y.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the component-wise sum of c and d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Compare orders coordinates row-major: by Y first, then by X.
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func (c Coord) Compare(d Coord) int {
	switch {
	case c.Y < d.Y:
		return -1
	case c.Y > d.Y:
		return 1
	case c.X < d.X:
		return -1
	case c.X > d.X:
		return 1
	}
	return 0
}

// Less reports whether c sorts before d in row-major order.
func (c Coord) Less(d Coord) bool {
	return c.Compare(d) < 0
}

// String formats c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Connectivity selects which adjacent cells count as neighbors.
type Connectivity int

const (
	// Conn4 uses orthogonal neighbors only: W, N, E, S.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonal neighbors: NW, NE, SE, SW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Offsets in the fixed neighbor order. Conn4 uses the first four entries.
var neighborOffsets = [8]Coord{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1}, // W, N, E, S
	{-1, -1}, {1, -1}, {1, 1}, {-1, 1}, // NW, NE, SE, SW
}

// Offsets returns a copy of the neighbor offsets for conn in the documented order.
func Offsets(conn Connectivity) []Coord {
	return append([]Coord(nil), offsets(conn)...)
}

func offsets(conn Connectivity) []Coord {
	if conn == Conn8 {
		return neighborOffsets[:]
	}
	return neighborOffsets[:4]
}

// Neighbor pairs an adjacent coordinate with the value stored there.
type Neighbor[T any] struct {
	Coord Coord
	Value T
}

// Grid is a dense width×height field of T values.
// Dimensions are fixed at construction; cells may be overwritten with Set.
type Grid[T any] struct {
	width, height int
	cells         []T
}
