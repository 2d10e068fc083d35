// Package day08 solves "Seven Segment Search": decoding scrambled displays.
package day08

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// ErrUndecodable is returned when a display's patterns do not identify all
// ten digits.
var ErrUndecodable = errors.New("day08: patterns cannot be decoded")

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   8,
		Title: "Seven Segment Search",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

// segments is a set of lit wires, bit i standing for 'a'+i.
type segments uint8

func (s segments) count() int { return bits.OnesCount8(uint8(s)) }

func (s segments) common(o segments) int { return (s & o).count() }

type display struct {
	patterns []segments
	output   []segments
}

func parseSegments(word string) (segments, error) {
	var s segments
	for _, r := range word {
		if r < 'a' || r > 'g' {
			return 0, fmt.Errorf("%w: wire %q", input.ErrParse, r)
		}
		s |= 1 << (r - 'a')
	}
	return s, nil
}

func parse(text string) ([]display, error) {
	lines := input.Lines(text)
	if len(lines) == 0 {
		return nil, input.ErrEmpty
	}
	out := make([]display, 0, len(lines))
	for i, l := range lines {
		left, right, ok := strings.Cut(l, "|")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing '|'", input.ErrParse, i+1)
		}
		var d display
		for _, side := range []struct {
			text string
			dst  *[]segments
		}{{left, &d.patterns}, {right, &d.output}} {
			for _, w := range strings.Fields(side.text) {
				s, err := parseSegments(w)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", i+1, err)
				}
				*side.dst = append(*side.dst, s)
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// Part1 counts output digits with a unique segment count: 1, 4, 7 and 8.
func Part1(text string) (int, error) {
	displays, err := parse(text)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, d := range displays {
		for _, s := range d.output {
			switch s.count() {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	return n, nil
}

// Part2 decodes every display and sums the four-digit outputs.
func Part2(text string) (int, error) {
	displays, err := parse(text)
	if err != nil {
		return 0, err
	}
	sum := 0
	for i, d := range displays {
		digits, err := decode(d.patterns)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		value := 0
		for _, s := range d.output {
			v, ok := digits[s]
			if !ok {
				return 0, fmt.Errorf("line %d: %w: unknown output pattern", i+1, ErrUndecodable)
			}
			value = value*10 + v
		}
		sum += value
	}
	return sum, nil
}

// decode maps each pattern to its digit. 1, 4, 7 and 8 are identified by
// size; the six- and five-segment digits by their overlap with 1 and 4.
func decode(patterns []segments) (map[segments]int, error) {
	var one, four segments
	for _, p := range patterns {
		switch p.count() {
		case 2:
			one = p
		case 4:
			four = p
		}
	}
	if one == 0 || four == 0 {
		return nil, fmt.Errorf("%w: 1 or 4 missing", ErrUndecodable)
	}

	digits := make(map[segments]int, 10)
	for _, p := range patterns {
		var d int
		switch p.count() {
		case 2:
			d = 1
		case 3:
			d = 7
		case 4:
			d = 4
		case 7:
			d = 8
		case 6:
			switch {
			case p.common(four) == 4:
				d = 9
			case p.common(one) == 2:
				d = 0
			default:
				d = 6
			}
		case 5:
			switch {
			case p.common(one) == 2:
				d = 3
			case p.common(four) == 3:
				d = 5
			default:
				d = 2
			}
		default:
			return nil, fmt.Errorf("%w: pattern with %d segments", ErrUndecodable, p.count())
		}
		digits[p] = d
	}
	if len(digits) != 10 {
		return nil, fmt.Errorf("%w: %d distinct patterns", ErrUndecodable, len(digits))
	}
	return digits, nil
}
