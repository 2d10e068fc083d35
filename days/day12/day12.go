// Package day12 solves "Passage Pathing": counting routes through a cave
// system.
package day12

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/aoc2021/core"
	"github.com/katalvlaran/aoc2021/dfs"
	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

const (
	start = "start"
	end   = "end"
)

// ErrNoEntrance is returned when the map lacks the start or end cave.
var ErrNoEntrance = errors.New("day12: start or end cave missing")

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   12,
		Title: "Passage Pathing",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

// big caves may be visited any number of times.
func big(cave string) bool {
	for _, r := range cave {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func parse(text string) (*core.Graph, error) {
	lines := input.Lines(text)
	if len(lines) == 0 {
		return nil, input.ErrEmpty
	}
	g := core.NewGraph()
	for i, l := range lines {
		a, b, ok := strings.Cut(l, "-")
		if !ok || a == "" || b == "" {
			return nil, fmt.Errorf("%w: line %d: %q", input.ErrParse, i+1, l)
		}
		if _, err := g.AddEdge(a, b, 0); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", input.ErrParse, i+1, err)
		}
	}
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return nil, ErrNoEntrance
	}
	return g, nil
}

// smallOnce admits big caves freely and small caves once.
func smallOnce(next string, w *dfs.Walk) bool {
	return big(next) || w.Visits(next) == 0
}

// oneSmallTwice additionally lets a single small cave other than start be
// entered a second time per path.
func oneSmallTwice(next string, w *dfs.Walk) bool {
	if smallOnce(next, w) {
		return true
	}
	if next == start {
		return false
	}
	for _, v := range w.Vertices() {
		if !big(v) && w.Visits(v) > 1 {
			return false
		}
	}
	return true
}

func count(text string, enter dfs.EnterFunc) (int, error) {
	g, err := parse(text)
	if err != nil {
		return 0, err
	}
	return dfs.CountPaths(g, start, end, dfs.WithEnter(enter))
}

// Part1 counts paths that visit small caves at most once.
func Part1(text string) (int, error) { return count(text, smallOnce) }

// Part2 counts paths where one small cave may be visited twice.
func Part2(text string) (int, error) { return count(text, oneSmallTwice) }
