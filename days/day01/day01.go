// Package day01 solves "Sonar Sweep": counting depth increases.
package day01

import (
	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   1,
		Title: "Sonar Sweep",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

// Part1 counts measurements larger than the previous one.
func Part1(text string) (int, error) {
	depths, err := input.Ints[int](text, "")
	if err != nil {
		return 0, err
	}
	return increases(depths, 1), nil
}

// Part2 counts increases of the three-measurement sliding sum. Two adjacent
// windows share two values, so only the values lag apart need comparing.
func Part2(text string) (int, error) {
	depths, err := input.Ints[int](text, "")
	if err != nil {
		return 0, err
	}
	return increases(depths, 3), nil
}

func increases(depths []int, lag int) int {
	n := 0
	for i := lag; i < len(depths); i++ {
		if depths[i] > depths[i-lag] {
			n++
		}
	}
	return n
}
