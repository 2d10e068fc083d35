// Package day11 solves "Dumbo Octopus": cascading flashes on an energy grid.
package day11

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// ErrNoSync is returned when the octopuses never all flash in the same step.
var ErrNoSync = errors.New("day11: no synchronized flash")

const (
	flashLevel = 9
	maxSteps   = 1 << 16
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   11,
		Title: "Dumbo Octopus",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

// step advances g by one step and returns the number of flashes. Every
// octopus gains one energy; those above flashLevel flash once, giving one
// energy to all eight neighbors, and end the step at zero.
func step(g *grid.Grid[int]) int {
	var pending []grid.Coord
	for c, e := range g.All() {
		g.Set(c, e+1)
		if e+1 > flashLevel {
			pending = append(pending, c)
		}
	}
	flashed := make([]bool, g.Len())
	for _, c := range pending {
		flashed[g.Index(c)] = true
	}
	for len(pending) > 0 {
		c := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for _, n := range g.Neighbors(c, grid.Conn8) {
			g.Set(n.Coord, n.Value+1)
			if i := g.Index(n.Coord); n.Value+1 > flashLevel && !flashed[i] {
				flashed[i] = true
				pending = append(pending, n.Coord)
			}
		}
	}
	count := 0
	for i, f := range flashed {
		if f {
			g.Set(g.Coordinate(i), 0)
			count++
		}
	}
	return count
}

// Part1 counts flashes over 100 steps.
func Part1(text string) (int, error) {
	g, err := input.DigitGrid(text)
	if err != nil {
		return 0, err
	}
	total := 0
	for range 100 {
		total += step(g)
	}
	return total, nil
}

// Part2 returns the first step during which every octopus flashes.
func Part2(text string) (int, error) {
	g, err := input.DigitGrid(text)
	if err != nil {
		return 0, err
	}
	for s := 1; s <= maxSteps; s++ {
		if step(g) == g.Len() {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w within %d steps", ErrNoSync, maxSteps)
}
