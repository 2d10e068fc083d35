// Package day02 solves "Dive!": steering the submarine.
package day02

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   2,
		Title: "Dive!",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

type command struct {
	dir    string
	amount int
}

func parse(text string) ([]command, error) {
	lines := input.Lines(text)
	if len(lines) == 0 {
		return nil, input.ErrEmpty
	}
	cmds := make([]command, 0, len(lines))
	for i, l := range lines {
		dir, num, ok := strings.Cut(l, " ")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", input.ErrParse, i+1, l)
		}
		switch dir {
		case "forward", "down", "up":
		default:
			return nil, fmt.Errorf("%w: line %d: unknown command %q", input.ErrParse, i+1, dir)
		}
		n, err := input.Int[int](num)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cmds = append(cmds, command{dir: dir, amount: n})
	}
	return cmds, nil
}

// Part1 multiplies final horizontal position by depth, where down and up
// change depth directly.
func Part1(text string) (int, error) {
	cmds, err := parse(text)
	if err != nil {
		return 0, err
	}
	var pos, depth int
	for _, c := range cmds {
		switch c.dir {
		case "forward":
			pos += c.amount
		case "down":
			depth += c.amount
		case "up":
			depth -= c.amount
		}
	}
	return pos * depth, nil
}

// Part2 does the same, but down and up adjust aim and forward dives by aim.
func Part2(text string) (int, error) {
	cmds, err := parse(text)
	if err != nil {
		return 0, err
	}
	var pos, depth, aim int
	for _, c := range cmds {
		switch c.dir {
		case "forward":
			pos += c.amount
			depth += aim * c.amount
		case "down":
			aim += c.amount
		case "up":
			aim -= c.amount
		}
	}
	return pos * depth, nil
}
