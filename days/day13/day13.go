// Package day13 solves "Transparent Origami": folding a sheet of dots.
package day13

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// ErrFoldRange is returned when a fold would move a dot past the sheet's
// top or left edge.
var ErrFoldRange = errors.New("day13: fold moves dot off the sheet")

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   13,
		Title: "Transparent Origami",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

type fold struct {
	alongX bool
	at     int
}

type sheet map[grid.Coord]struct{}

func parse(text string) (sheet, []fold, error) {
	blocks := input.Blocks(text)
	if len(blocks) != 2 {
		return nil, nil, fmt.Errorf("%w: want dots and folds separated by a blank line", input.ErrParse)
	}
	dots := make(sheet)
	for i, l := range input.Lines(blocks[0]) {
		xy, err := input.Ints[int](l, ",")
		if err != nil {
			return nil, nil, fmt.Errorf("dot %d: %w", i+1, err)
		}
		if len(xy) != 2 || xy[0] < 0 || xy[1] < 0 {
			return nil, nil, fmt.Errorf("%w: dot %d: %q", input.ErrParse, i+1, l)
		}
		dots[grid.C(xy[0], xy[1])] = struct{}{}
	}
	var folds []fold
	for i, l := range input.Lines(blocks[1]) {
		axis, at, ok := strings.Cut(strings.TrimPrefix(l, "fold along "), "=")
		if !ok || (axis != "x" && axis != "y") {
			return nil, nil, fmt.Errorf("%w: fold %d: %q", input.ErrParse, i+1, l)
		}
		n, err := input.Int[int](at)
		if err != nil {
			return nil, nil, fmt.Errorf("fold %d: %w", i+1, err)
		}
		folds = append(folds, fold{alongX: axis == "x", at: n})
	}
	return dots, folds, nil
}

// apply reflects every dot past the fold line onto the other half.
func (s sheet) apply(f fold) (sheet, error) {
	out := make(sheet, len(s))
	for p := range s {
		v := &p.Y
		if f.alongX {
			v = &p.X
		}
		if *v > f.at {
			*v = 2*f.at - *v
		}
		if *v < 0 {
			return nil, fmt.Errorf("%w: fold at %d", ErrFoldRange, f.at)
		}
		out[p] = struct{}{}
	}
	return out, nil
}

// render draws the dots, '#' for a dot and '.' for blank paper.
func (s sheet) render() (string, error) {
	var w, h int
	for p := range s {
		w, h = max(w, p.X+1), max(h, p.Y+1)
	}
	paper, err := grid.Filled(w, h, false)
	if err != nil {
		return "", err
	}
	for p := range s {
		paper.Set(p, true)
	}
	var sb strings.Builder
	for c, dot := range paper.All() {
		if c.X == 0 && c.Y > 0 {
			sb.WriteByte('\n')
		}
		if dot {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String(), nil
}

// Part1 counts visible dots after the first fold.
func Part1(text string) (int, error) {
	dots, folds, err := parse(text)
	if err != nil {
		return 0, err
	}
	if len(folds) == 0 {
		return len(dots), nil
	}
	dots, err = dots.apply(folds[0])
	if err != nil {
		return 0, err
	}
	return len(dots), nil
}

// Part2 applies every fold and renders the resulting code.
func Part2(text string) (string, error) {
	dots, folds, err := parse(text)
	if err != nil {
		return "", err
	}
	for _, f := range folds {
		if dots, err = dots.apply(f); err != nil {
			return "", err
		}
	}
	return dots.render()
}
