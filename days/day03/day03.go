// Package day03 solves "Binary Diagnostic".
package day03

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   3,
		Title: "Binary Diagnostic",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

// report holds the diagnostic numbers and their common bit width.
type report struct {
	nums  []uint
	width int
}

func parse(text string) (report, error) {
	lines := input.Lines(text)
	if len(lines) == 0 {
		return report{}, input.ErrEmpty
	}
	r := report{width: len(lines[0]), nums: make([]uint, 0, len(lines))}
	for i, l := range lines {
		if len(l) != r.width {
			return report{}, fmt.Errorf("%w: line %d has %d bits, want %d", input.ErrParse, i+1, len(l), r.width)
		}
		n, err := strconv.ParseUint(l, 2, 64)
		if err != nil {
			return report{}, fmt.Errorf("%w: line %d: %q is not binary", input.ErrParse, i+1, l)
		}
		r.nums = append(r.nums, uint(n))
	}
	return r, nil
}

func ones(nums []uint, bit int) int {
	n := 0
	for _, v := range nums {
		if v>>bit&1 == 1 {
			n++
		}
	}
	return n
}

// Part1 multiplies the gamma rate (most common bits) by the epsilon rate
// (least common bits).
func Part1(text string) (uint, error) {
	r, err := parse(text)
	if err != nil {
		return 0, err
	}
	var gamma, epsilon uint
	for bit := 0; bit < r.width; bit++ {
		if c := ones(r.nums, bit); c > len(r.nums)-c {
			gamma |= 1 << bit
		} else {
			epsilon |= 1 << bit
		}
	}
	return gamma * epsilon, nil
}

// Part2 multiplies the oxygen generator rating by the CO2 scrubber rating.
func Part2(text string) (uint, error) {
	r, err := parse(text)
	if err != nil {
		return 0, err
	}
	return rating(r, true) * rating(r, false), nil
}

// rating filters numbers bit by bit from the most significant one. With
// keepCommon the most common bit survives (1 on ties), otherwise the least
// common one (0 on ties). A bit shared by every remaining number would
// filter out all of them, so it is skipped; survivors then agree on every
// bit and the result is well defined.
func rating(r report, keepCommon bool) uint {
	nums := append([]uint(nil), r.nums...)
	for bit := r.width - 1; bit >= 0 && len(nums) > 1; bit-- {
		c := ones(nums, bit)
		oneCommon := c >= len(nums)-c
		want := uint(0)
		if oneCommon == keepCommon {
			want = 1
		}
		kept := nums[:0]
		for _, v := range nums {
			if v>>bit&1 == want {
				kept = append(kept, v)
			}
		}
		if len(kept) > 0 {
			nums = kept
		}
	}
	return nums[0]
}
