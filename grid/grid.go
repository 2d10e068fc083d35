package grid

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// New builds a width×height grid from a flat row-major list of values.
// The list is copied. Returns ErrEmptyGrid if a dimension is not positive and
// ErrShapeMismatch if width*height overflows int or len(cells) != width*height;
// no grid is returned on error.
// Complexity: O(W×H).
func New[T any](width, height int, cells []T) (*Grid[T], error) {
	if err := checkShape(width, height); err != nil {
		return nil, err
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: %dx%d needs %d cells, got %d",
			ErrShapeMismatch, width, height, width*height, len(cells))
	}
	g := &Grid[T]{width: width, height: height, cells: make([]T, len(cells))}
	copy(g.cells, cells)

	return g, nil
}

// Filled builds a width×height grid with every cell set to v.
func Filled[T any](width, height int, v T) (*Grid[T], error) {
	if err := checkShape(width, height); err != nil {
		return nil, err
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = v
	}

	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns the number of cells, Width()*Height().
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether c lies inside the grid.
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index maps c to its flat offset x + y*width.
// Panics with ErrOutOfBounds if c is outside the grid.
func (g *Grid[T]) Index(c Coord) int {
	g.mustContain(c)
	return c.X + c.Y*g.width
}

// Coordinate converts a flat offset back to its Coord.
// Panics with ErrOutOfBounds if i is not a valid offset.
func (g *Grid[T]) Coordinate(i int) Coord {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Errorf("%w: index %d in %d cells", ErrOutOfBounds, i, len(g.cells)))
	}
	return Coord{X: i % g.width, Y: i / g.width}
}

// At returns the value at c.
// Panics with ErrOutOfBounds if c is outside the grid.
func (g *Grid[T]) At(c Coord) T {
	return g.cells[g.Index(c)]
}

// Lookup returns the value at c and true, or the zero value and false when c
// is outside the grid.
func (g *Grid[T]) Lookup(c Coord) (T, bool) {
	if !g.InBounds(c) {
		var zero T
		return zero, false
	}
	return g.cells[c.X+c.Y*g.width], true
}

// Set overwrites the value at c.
// Panics with ErrOutOfBounds if c is outside the grid.
func (g *Grid[T]) Set(c Coord, v T) {
	g.cells[g.Index(c)] = v
}

// Neighbors returns the in-bounds cells adjacent to c under conn, in the
// order documented on the package. The anchor c itself must be in bounds.
func (g *Grid[T]) Neighbors(c Coord, conn Connectivity) []Neighbor[T] {
	g.mustContain(c)
	offs := offsets(conn)
	out := make([]Neighbor[T], 0, len(offs))
	for _, d := range offs {
		n := c.Add(d)
		if !g.InBounds(n) {
			continue
		}
		out = append(out, Neighbor[T]{Coord: n, Value: g.cells[n.X+n.Y*g.width]})
	}

	return out
}

// All returns a sequence over every (Coord, value) pair in row-major order:
// y outer, x inner. Each call starts a fresh pass. Values are read lazily,
// so writes made between steps are observed by later steps.
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i := range g.cells {
			if !yield(Coord{X: i % g.width, Y: i / g.width}, g.cells[i]) {
				return
			}
		}
	}
}

// Cells returns a copy of the flat cell list in construction layout.
func (g *Grid[T]) Cells() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{width: g.width, height: g.height, cells: g.Cells()}
}

// Map returns a new grid whose cells are fn applied to each cell of g.
// g is left untouched.
func (g *Grid[T]) Map(fn func(Coord, T) T) *Grid[T] {
	out := &Grid[T]{width: g.width, height: g.height, cells: make([]T, len(g.cells))}
	for c, v := range g.All() {
		out.cells[c.X+c.Y*g.width] = fn(c, v)
	}

	return out
}

// String renders one row per line with cells formatted by %v.
func (g *Grid[T]) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			fmt.Fprintf(&b, "%v", g.cells[x+y*g.width])
		}
	}

	return b.String()
}

// checkShape rejects non-positive dimensions and cell counts that do not fit
// in an int.
func checkShape(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, width, height)
	}
	if width > math.MaxInt/height {
		return fmt.Errorf("%w: %dx%d overflows int", ErrShapeMismatch, width, height)
	}
	return nil
}

func (g *Grid[T]) mustContain(c Coord) {
	if !g.InBounds(c) {
		panic(fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.width, g.height))
	}
}
