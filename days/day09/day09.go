// Package day09 solves "Smoke Basin": low points and basins of a heightmap.
package day09

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/gridgraph"
	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// ErrTooFewBasins is returned when the map has fewer than three basins.
var ErrTooFewBasins = errors.New("day09: fewer than three basins")

// ridge is the height that separates basins.
const ridge = 9

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   9,
		Title: "Smoke Basin",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

// lowPoints yields the heights of cells strictly lower than every
// orthogonal neighbor.
func lowPoints(g *grid.Grid[int]) []int {
	var lows []int
	for c, h := range g.All() {
		low := true
		for _, n := range g.Neighbors(c, grid.Conn4) {
			if n.Value <= h {
				low = false
				break
			}
		}
		if low {
			lows = append(lows, h)
		}
	}
	return lows
}

// Part1 sums the risk level (height + 1) of all low points.
func Part1(text string) (int, error) {
	g, err := input.DigitGrid(text)
	if err != nil {
		return 0, err
	}
	risk := 0
	for _, h := range lowPoints(g) {
		risk += h + 1
	}
	return risk, nil
}

// Part2 multiplies the sizes of the three largest basins. A basin is a
// region of cells below ridge height bounded by ridges or the map edge.
func Part2(text string) (int, error) {
	g, err := input.DigitGrid(text)
	if err != nil {
		return 0, err
	}
	basins := gridgraph.ConnectedComponents(g, grid.Conn4, func(h int) bool { return h < ridge })
	if len(basins) < 3 {
		return 0, fmt.Errorf("%w: found %d", ErrTooFewBasins, len(basins))
	}
	sizes := make([]int, len(basins))
	for i, b := range basins {
		sizes[i] = len(b)
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return sizes[0] * sizes[1] * sizes[2], nil
}
