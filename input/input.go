// Package input turns raw puzzle text into values: lines, blank-line blocks,
// integer lists and grids.
//
// All helpers trim surrounding whitespace first, so inputs read from files
// (trailing newline) and inline test fixtures (indented lines) parse the same.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/aoc2021/grid"
)

// Sentinel errors for parsing.
var (
	// ErrEmpty indicates the input holds no data.
	ErrEmpty = errors.New("input: empty input")
	// ErrParse indicates malformed text: a bad number, an unknown token or a
	// rune that cannot be mapped to a cell value.
	ErrParse = errors.New("input: malformed input")
	// ErrRagged indicates grid lines of unequal length.
	ErrRagged = errors.New("input: grid lines differ in length")
)

// Lines splits text into trimmed lines, dropping leading and trailing blank lines.
func Lines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}

	return lines
}

// Blocks splits text into groups separated by blank lines. Lines inside a
// block are trimmed and joined by '\n'.
func Blocks(text string) []string {
	var (
		blocks []string
		cur    []string
	)
	for _, l := range Lines(text) {
		if l == "" {
			if len(cur) > 0 {
				blocks = append(blocks, strings.Join(cur, "\n"))
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, strings.Join(cur, "\n"))
	}

	return blocks
}

// Split splits trimmed text on sep and trims every field.
func Split(text, sep string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	fields := strings.Split(text, sep)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	return fields
}

// Int parses one base-10 integer of type T.
func Int[T constraints.Integer](s string) (T, error) {
	s = strings.TrimSpace(s)
	var zero T
	if isSigned[T]() {
		n, err := strconv.ParseInt(s, 10, bitSize[T]())
		if err != nil {
			return zero, fmt.Errorf("%w: %q is not an integer", ErrParse, s)
		}
		return T(n), nil
	}
	n, err := strconv.ParseUint(s, 10, bitSize[T]())
	if err != nil {
		return zero, fmt.Errorf("%w: %q is not an unsigned integer", ErrParse, s)
	}

	return T(n), nil
}

// Ints parses a list of integers separated by sep. An empty sep means one
// integer per line. Returns ErrEmpty when text holds no numbers.
func Ints[T constraints.Integer](text, sep string) ([]T, error) {
	var fields []string
	if sep == "" {
		fields = Lines(text)
	} else {
		fields = Split(text, sep)
	}
	if len(fields) == 0 {
		return nil, ErrEmpty
	}
	out := make([]T, 0, len(fields))
	for i, f := range fields {
		n, err := Int[T](f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		out = append(out, n)
	}

	return out, nil
}

// Grid builds a grid with one cell per rune: every line is a row, every rune
// is converted by conv. All lines must have the same length.
func Grid[T any](text string, conv func(rune) (T, error)) (*grid.Grid[T], error) {
	lines := Lines(text)
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	width := len([]rune(lines[0]))
	cells := make([]T, 0, width*len(lines))
	for y, l := range lines {
		row := []rune(l)
		if len(row) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRagged, y, len(row), width)
		}
		for x, r := range row {
			v, err := conv(r)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			cells = append(cells, v)
		}
	}

	return grid.New(width, len(lines), cells)
}

// DigitGrid parses a block of decimal digits into a grid of ints.
func DigitGrid(text string) (*grid.Grid[int], error) {
	return Grid(text, Digit)
}

// RuneGrid parses a block of text into a grid of runes.
func RuneGrid(text string) (*grid.Grid[rune], error) {
	return Grid(text, func(r rune) (rune, error) { return r, nil })
}

// Digit converts an ASCII decimal digit to its value.
func Digit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("%w: %q is not a digit", ErrParse, r)
	}
	return int(r - '0'), nil
}

func isSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

func bitSize[T constraints.Integer]() int {
	var v T = 1
	bits := 0
	for v != 0 {
		v <<= 1
		bits++
	}
	return bits
}
