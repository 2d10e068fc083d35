// Package day04 solves "Giant Squid": bingo against a squid.
package day04

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// ErrNoWinner is returned when the drawn numbers never complete a board.
var ErrNoWinner = errors.New("day04: no board wins")

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   4,
		Title: "Giant Squid",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

type square struct {
	n      int
	marked bool
}

type board struct {
	*grid.Grid[square]
	won bool
}

// mark flags n and reports whether the board now has a complete row or column.
func (b *board) mark(n int) bool {
	for c, sq := range b.All() {
		if sq.n != n || sq.marked {
			continue
		}
		b.Set(c, square{n: n, marked: true})
		return b.line(grid.C(0, c.Y), grid.C(1, 0)) || b.line(grid.C(c.X, 0), grid.C(0, 1))
	}
	return false
}

// line checks every square from start in direction step.
func (b *board) line(start, step grid.Coord) bool {
	for c := start; b.InBounds(c); c = c.Add(step) {
		if !b.At(c).marked {
			return false
		}
	}
	return true
}

func (b *board) unmarkedSum() int {
	sum := 0
	for _, sq := range b.All() {
		if !sq.marked {
			sum += sq.n
		}
	}
	return sum
}

func parse(text string) ([]int, []*board, error) {
	blocks := input.Blocks(text)
	if len(blocks) < 2 {
		return nil, nil, fmt.Errorf("%w: want draw line and at least one board", input.ErrEmpty)
	}
	draws, err := input.Ints[int](blocks[0], ",")
	if err != nil {
		return nil, nil, fmt.Errorf("draws: %w", err)
	}
	boards := make([]*board, 0, len(blocks)-1)
	for i, blk := range blocks[1:] {
		b, err := parseBoard(blk)
		if err != nil {
			return nil, nil, fmt.Errorf("board %d: %w", i+1, err)
		}
		boards = append(boards, b)
	}
	return draws, boards, nil
}

func parseBoard(blk string) (*board, error) {
	rows := input.Lines(blk)
	width := len(strings.Fields(rows[0]))
	cells := make([]square, 0, width*len(rows))
	for y, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != width {
			return nil, fmt.Errorf("%w: row %d has %d numbers, want %d", input.ErrRagged, y, len(fields), width)
		}
		for _, f := range fields {
			n, err := input.Int[int](f)
			if err != nil {
				return nil, err
			}
			cells = append(cells, square{n: n})
		}
	}
	g, err := grid.New(width, len(rows), cells)
	if err != nil {
		return nil, err
	}
	return &board{Grid: g}, nil
}

// play draws numbers until stop returns true for a freshly won board and
// returns that board's score.
func play(text string, stop func(won, total int) bool) (int, error) {
	draws, boards, err := parse(text)
	if err != nil {
		return 0, err
	}
	won := 0
	for _, n := range draws {
		for _, b := range boards {
			if b.won || !b.mark(n) {
				continue
			}
			b.won = true
			won++
			if stop(won, len(boards)) {
				return b.unmarkedSum() * n, nil
			}
		}
	}
	return 0, ErrNoWinner
}

// Part1 scores the first board to win.
func Part1(text string) (int, error) {
	return play(text, func(won, _ int) bool { return won == 1 })
}

// Part2 scores the last board to win.
func Part2(text string) (int, error) {
	return play(text, func(won, total int) bool { return won == total })
}
