// Package day05 solves "Hydrothermal Venture": overlapping vent lines.
package day05

import (
	"fmt"
	"regexp"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   5,
		Title: "Hydrothermal Venture",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

var lineRE = regexp.MustCompile(`^(\d+),(\d+) -> (\d+),(\d+)$`)

type segment struct {
	from, to grid.Coord
}

// step returns the unit move from 'from' to 'to', and false for lines that
// are neither axis-aligned nor at 45 degrees, or for diagonals when
// diagonals are excluded.
func (s segment) step(diagonals bool) (grid.Coord, bool) {
	d := grid.C(sign(s.to.X-s.from.X), sign(s.to.Y-s.from.Y))
	switch {
	case d.X == 0 || d.Y == 0:
		return d, true
	case !diagonals:
		return d, false
	default:
		return d, abs(s.to.X-s.from.X) == abs(s.to.Y-s.from.Y)
	}
}

func parse(text string) ([]segment, error) {
	lines := input.Lines(text)
	if len(lines) == 0 {
		return nil, input.ErrEmpty
	}
	segs := make([]segment, 0, len(lines))
	for i, l := range lines {
		m := lineRE.FindStringSubmatch(l)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", input.ErrParse, i+1, l)
		}
		var v [4]int
		for j := range v {
			n, err := input.Int[int](m[j+1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			v[j] = n
		}
		segs = append(segs, segment{from: grid.C(v[0], v[1]), to: grid.C(v[2], v[3])})
	}
	return segs, nil
}

func overlaps(text string, diagonals bool) (int, error) {
	segs, err := parse(text)
	if err != nil {
		return 0, err
	}
	covered := make(map[grid.Coord]int)
	for _, s := range segs {
		d, ok := s.step(diagonals)
		if !ok {
			continue
		}
		for p := s.from; ; p = p.Add(d) {
			covered[p]++
			if p == s.to {
				break
			}
		}
	}
	n := 0
	for _, c := range covered {
		if c > 1 {
			n++
		}
	}
	return n, nil
}

// Part1 counts points where at least two horizontal or vertical lines overlap.
func Part1(text string) (int, error) { return overlaps(text, false) }

// Part2 also counts 45 degree diagonal lines.
func Part2(text string) (int, error) { return overlaps(text, true) }

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
