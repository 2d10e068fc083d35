// Package day15 solves "Chiton": the lowest-risk route through a cave.
package day15

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/dijkstra"
	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/gridgraph"
	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// tiles is how many times the map repeats in each direction for the full cave.
const tiles = 5

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   15,
		Title: "Chiton",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

// lowestRisk returns the total risk of the cheapest path from the top-left
// to the bottom-right corner. The starting cell is never entered, so its
// risk does not count.
func lowestRisk(g *grid.Grid[int]) (int64, error) {
	opts := gridgraph.DefaultOptions[int]()
	opts.Weight = func(_ grid.Coord, risk int) int64 { return int64(risk) }
	cg, err := gridgraph.ToCoreGraph(g, opts)
	if err != nil {
		return 0, err
	}
	src := gridgraph.VertexID(grid.C(0, 0))
	dst := gridgraph.VertexID(grid.C(g.Width()-1, g.Height()-1))
	dist, _, err := dijkstra.Dijkstra(cg, dijkstra.Source(src), dijkstra.WithTarget(dst))
	if err != nil {
		return 0, err
	}
	if dist[dst] == dijkstra.Unreachable {
		return 0, fmt.Errorf("%w: %s", dijkstra.ErrNoPath, dst)
	}
	return dist[dst], nil
}

// expand tiles g tiles×tiles times. Each tile step right or down adds one
// to every risk, wrapping from 9 back to 1.
func expand(g *grid.Grid[int]) (*grid.Grid[int], error) {
	w, h := g.Width(), g.Height()
	full, err := grid.Filled(w*tiles, h*tiles, 0)
	if err != nil {
		return nil, err
	}
	return full.Map(func(c grid.Coord, _ int) int {
		risk := g.At(grid.C(c.X%w, c.Y%h))
		moves := c.X/w + c.Y/h
		return (risk+moves-1)%9 + 1
	}), nil
}

// Part1 finds the lowest total risk across the given map.
func Part1(text string) (int64, error) {
	g, err := input.DigitGrid(text)
	if err != nil {
		return 0, err
	}
	return lowestRisk(g)
}

// Part2 finds it across the map tiled five times in both directions.
func Part2(text string) (int64, error) {
	g, err := input.DigitGrid(text)
	if err != nil {
		return 0, err
	}
	full, err := expand(g)
	if err != nil {
		return 0, err
	}
	return lowestRisk(full)
}
