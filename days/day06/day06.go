// Package day06 solves "Lanternfish": simulating an exponential school.
package day06

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

const (
	resetTimer = 6
	newTimer   = 8
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   6,
		Title: "Lanternfish",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

// Simulate returns the school size after days. Fish are counted per timer
// value, so the cost does not depend on the population.
func Simulate(text string, days int) (uint64, error) {
	timers, err := input.Ints[int](text, ",")
	if err != nil {
		return 0, err
	}
	var school [newTimer + 1]uint64
	for _, t := range timers {
		if t < 0 || t > newTimer {
			return 0, fmt.Errorf("%w: timer %d out of range", input.ErrParse, t)
		}
		school[t]++
	}
	for range days {
		spawning := school[0]
		copy(school[:], school[1:])
		school[resetTimer] += spawning
		school[newTimer] = spawning
	}
	var total uint64
	for _, n := range school {
		total += n
	}
	return total, nil
}

// Part1 counts fish after 80 days.
func Part1(text string) (uint64, error) { return Simulate(text, 80) }

// Part2 counts fish after 256 days.
func Part2(text string) (uint64, error) { return Simulate(text, 256) }
