// Package day07 solves "The Treachery of Whales": aligning crab submarines.
package day07

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   7,
		Title: "The Treachery of Whales",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

// cheapest tries every position between the outermost crabs and returns the
// lowest total fuel, abandoning a candidate once it exceeds the best so far.
func cheapest(text string, cost func(moves int) int) (int, error) {
	crabs, err := input.Ints[int](text, ",")
	if err != nil {
		return 0, err
	}
	if slices.Min(crabs) < 0 {
		return 0, fmt.Errorf("%w: negative position", input.ErrParse)
	}
	best := math.MaxInt
	for pos := 0; pos <= slices.Max(crabs); pos++ {
		fuel := 0
		for _, c := range crabs {
			if fuel += cost(abs(pos - c)); fuel > best {
				break
			}
		}
		best = min(best, fuel)
	}
	return best, nil
}

// Part1 aligns with one unit of fuel per step.
func Part1(text string) (int, error) {
	return cheapest(text, func(n int) int { return n })
}

// Part2 aligns where each further step costs one more unit.
func Part2(text string) (int, error) {
	return cheapest(text, func(n int) int { return n * (n + 1) / 2 })
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
