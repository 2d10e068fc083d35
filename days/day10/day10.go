// Package day10 solves "Syntax Scoring": corrupted and incomplete chunks.
package day10

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// ErrNoIncomplete is returned when no line is incomplete.
var ErrNoIncomplete = errors.New("day10: no incomplete lines")

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   10,
		Title: "Syntax Scoring",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

var closerOf = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}

var (
	corruptScore    = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	completionScore = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
)

// check scans a line. For a corrupted line it returns the first illegal
// closer; otherwise it returns the closers still expected, innermost first.
func check(line string) (illegal rune, missing []rune, err error) {
	var stack []rune
	for _, r := range line {
		if closer, ok := closerOf[r]; ok {
			stack = append(stack, closer)
			continue
		}
		if _, ok := corruptScore[r]; !ok {
			return 0, nil, fmt.Errorf("%w: unexpected %q", input.ErrParse, r)
		}
		if len(stack) == 0 || stack[len(stack)-1] != r {
			return r, nil, nil
		}
		stack = stack[:len(stack)-1]
	}
	slices.Reverse(stack)
	return 0, stack, nil
}

// Part1 sums the scores of the first illegal character on corrupted lines.
func Part1(text string) (int, error) {
	lines := input.Lines(text)
	if len(lines) == 0 {
		return 0, input.ErrEmpty
	}
	total := 0
	for i, l := range lines {
		illegal, _, err := check(l)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += corruptScore[illegal]
	}
	return total, nil
}

// Part2 returns the median completion score of the incomplete lines.
func Part2(text string) (int, error) {
	lines := input.Lines(text)
	if len(lines) == 0 {
		return 0, input.ErrEmpty
	}
	var scores []int
	for i, l := range lines {
		illegal, missing, err := check(l)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if illegal != 0 || len(missing) == 0 {
			continue
		}
		score := 0
		for _, r := range missing {
			score = score*5 + completionScore[r]
		}
		scores = append(scores, score)
	}
	if len(scores) == 0 {
		return 0, ErrNoIncomplete
	}
	slices.Sort(scores)
	return scores[len(scores)/2], nil
}
