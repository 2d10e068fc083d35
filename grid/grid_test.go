package grid_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/grid"
)

// letters builds the 4×5 grid
//
//	abcd
//	efgh
//	ijkl
//	mnop
//	qrst
func letters(t *testing.T) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.New(4, 5, []rune("abcdefghijklmnopqrst"))
	require.NoError(t, err)

	return g
}

// requireOutOfBounds runs fn and checks that it panics with ErrOutOfBounds.
func requireOutOfBounds(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	}()
	fn()
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		cells         []int
		err           error
	}{
		{"ZeroWidth", 0, 3, nil, grid.ErrEmptyGrid},
		{"NegativeHeight", 2, -1, nil, grid.ErrEmptyGrid},
		{"TooFew", 2, 2, []int{1, 2, 3}, grid.ErrShapeMismatch},
		{"TooMany", 2, 2, []int{1, 2, 3, 4, 5}, grid.ErrShapeMismatch},
		{"AreaOverflow", math.MaxInt/2 + 1, 2, []int{}, grid.ErrShapeMismatch},
		{"HugeWidth", math.MaxInt, 2, nil, grid.ErrShapeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.width, tc.height, tc.cells)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, g, "no usable grid on failure")
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	cells := []int{1, 2, 3, 4}
	g, err := grid.New(2, 2, cells)
	require.NoError(t, err)

	cells[0] = 99
	assert.Equal(t, 1, g.At(grid.C(0, 0)))
}

func TestAt_RowMajorOffset(t *testing.T) {
	g := letters(t)
	assert.Equal(t, 'a', g.At(grid.C(0, 0)))
	assert.Equal(t, 'o', g.At(grid.C(2, 3)))
	assert.Equal(t, 't', g.At(grid.C(3, 4)))

	cells := []rune("abcdefghijklmnopqrst")
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			assert.Equal(t, cells[x+y*g.Width()], g.At(grid.C(x, y)), "cell (%d,%d)", x, y)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	g := letters(t)
	bad := []grid.Coord{{-1, 0}, {0, -1}, {4, 0}, {0, 5}, {4, 5}}
	for _, c := range bad {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		requireOutOfBounds(t, func() { g.At(c) })
		requireOutOfBounds(t, func() { g.Set(c, 'z') })
		requireOutOfBounds(t, func() { g.Neighbors(c, grid.Conn4) })
		requireOutOfBounds(t, func() { g.Neighbors(c, grid.Conn8) })

		v, ok := g.Lookup(c)
		assert.False(t, ok)
		assert.Zero(t, v)
	}
	requireOutOfBounds(t, func() { g.Coordinate(20) })
	requireOutOfBounds(t, func() { g.Coordinate(-1) })
}

func TestSet_OnlyTouchesOneCell(t *testing.T) {
	g := letters(t)
	before := g.Cells()

	g.Set(grid.C(0, 0), 'z')

	assert.Equal(t, 'z', g.At(grid.C(0, 0)))
	after := g.Cells()
	assert.Equal(t, before[1:], after[1:])
}

func TestNeighbors_Conn4(t *testing.T) {
	g := letters(t)
	n := func(x, y int, v rune) grid.Neighbor[rune] {
		return grid.Neighbor[rune]{Coord: grid.C(x, y), Value: v}
	}

	assert.Equal(t, []grid.Neighbor[rune]{n(1, 0, 'b'), n(0, 1, 'e')},
		g.Neighbors(grid.C(0, 0), grid.Conn4))
	assert.Equal(t, []grid.Neighbor[rune]{n(1, 0, 'b'), n(3, 0, 'd'), n(2, 1, 'g')},
		g.Neighbors(grid.C(2, 0), grid.Conn4))
	assert.Equal(t, []grid.Neighbor[rune]{n(0, 2, 'i'), n(1, 1, 'f'), n(2, 2, 'k'), n(1, 3, 'n')},
		g.Neighbors(grid.C(1, 2), grid.Conn4))
	assert.Equal(t, []grid.Neighbor[rune]{n(2, 4, 's'), n(3, 3, 'p')},
		g.Neighbors(grid.C(3, 4), grid.Conn4))
}

func TestNeighbors_Conn8Order(t *testing.T) {
	g := letters(t)
	var got []rune
	for _, nb := range g.Neighbors(grid.C(1, 1), grid.Conn8) {
		got = append(got, nb.Value)
	}
	// W, N, E, S, NW, NE, SE, SW
	assert.Equal(t, []rune("ebgjacki"), got)
}

func TestNeighbors_Counts(t *testing.T) {
	g := letters(t)
	w, h := g.Width(), g.Height()
	for c := range g.All() {
		onX := c.X == 0 || c.X == w-1
		onY := c.Y == 0 || c.Y == h-1
		want4, want8 := 4, 8
		switch {
		case onX && onY:
			want4, want8 = 2, 3
		case onX || onY:
			want4, want8 = 3, 5
		}
		assert.Len(t, g.Neighbors(c, grid.Conn4), want4, "conn4 %v", c)
		assert.Len(t, g.Neighbors(c, grid.Conn8), want8, "conn8 %v", c)
	}
}

func TestAll_RoundTrip(t *testing.T) {
	g := letters(t)
	seen := make(map[grid.Coord]bool)
	var values []rune
	for c, v := range g.All() {
		assert.False(t, seen[c], "duplicate %v", c)
		seen[c] = true
		values = append(values, v)
	}
	assert.Len(t, seen, 20)
	assert.Equal(t, g.Cells(), values)

	rebuilt, err := grid.New(g.Width(), g.Height(), values)
	require.NoError(t, err)
	assert.Equal(t, g, rebuilt)
}

func TestAll_RestartableAndStoppable(t *testing.T) {
	g := letters(t)
	first := 0
	for range g.All() {
		first++
		if first == 3 {
			break
		}
	}
	second := 0
	for range g.All() {
		second++
	}
	assert.Equal(t, 3, first)
	assert.Equal(t, 20, second)
}

func TestCoordinate_InverseOfIndex(t *testing.T) {
	g := letters(t)
	for i := 0; i < g.Len(); i++ {
		c := g.Coordinate(i)
		assert.Equal(t, i, g.Index(c))
	}
}

func TestCloneAndMap_LeaveSourceUntouched(t *testing.T) {
	g, err := grid.New(3, 1, []int{1, 2, 3})
	require.NoError(t, err)

	doubled := g.Map(func(_ grid.Coord, v int) int { return v * 2 })
	clone := g.Clone()
	clone.Set(grid.C(0, 0), 7)

	assert.Equal(t, []int{1, 2, 3}, g.Cells())
	assert.Equal(t, []int{2, 4, 6}, doubled.Cells())
	assert.Equal(t, []int{7, 2, 3}, clone.Cells())
}

func TestFilled(t *testing.T) {
	g, err := grid.Filled(3, 2, '.')
	require.NoError(t, err)
	assert.Equal(t, "...\n...", g.String())

	_, err = grid.Filled(0, 2, '.')
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.Filled(math.MaxInt, math.MaxInt, '.')
	assert.ErrorIs(t, err, grid.ErrShapeMismatch)
}

func TestCoord_Order(t *testing.T) {
	cs := []grid.Coord{{2, 1}, {0, 2}, {1, 1}, {3, 0}}
	slices.SortFunc(cs, grid.Coord.Compare)
	assert.Equal(t, []grid.Coord{{3, 0}, {1, 1}, {2, 1}, {0, 2}}, cs)
	assert.True(t, grid.C(9, 0).Less(grid.C(0, 1)))
	assert.Equal(t, 0, grid.C(1, 1).Compare(grid.C(1, 1)))
}

func TestOffsets_ReturnsCopy(t *testing.T) {
	o := grid.Offsets(grid.Conn4)
	o[0] = grid.C(5, 5)
	assert.Equal(t, grid.C(-1, 0), grid.Offsets(grid.Conn4)[0])
	assert.Len(t, grid.Offsets(grid.Conn8), 8)
}
