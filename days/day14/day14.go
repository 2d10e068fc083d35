// Package day14 solves "Extended Polymerization".
package day14

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   14,
		Title: "Extended Polymerization",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

type pair [2]byte

type polymer struct {
	template string
	rules    map[pair]byte
}

func parse(text string) (polymer, error) {
	blocks := input.Blocks(text)
	if len(blocks) != 2 || blocks[0] == "" {
		return polymer{}, fmt.Errorf("%w: want template and rules separated by a blank line", input.ErrParse)
	}
	p := polymer{template: blocks[0], rules: make(map[pair]byte)}
	for i, l := range input.Lines(blocks[1]) {
		from, to, ok := strings.Cut(l, " -> ")
		if !ok || len(from) != 2 || len(to) != 1 {
			return polymer{}, fmt.Errorf("%w: rule %d: %q", input.ErrParse, i+1, l)
		}
		p.rules[pair{from[0], from[1]}] = to[0]
	}
	return p, nil
}

// Grow runs steps insertion rounds and returns the quantity of the most
// common element minus that of the least common. Only pair counts are
// tracked; every element is the first of exactly one pair except the
// template's last element, which never moves.
func Grow(text string, steps int) (uint64, error) {
	p, err := parse(text)
	if err != nil {
		return 0, err
	}
	pairs := make(map[pair]uint64)
	for i := 0; i+1 < len(p.template); i++ {
		pairs[pair{p.template[i], p.template[i+1]}]++
	}
	for range steps {
		next := make(map[pair]uint64, len(pairs))
		for pr, n := range pairs {
			mid, ok := p.rules[pr]
			if !ok {
				next[pr] += n
				continue
			}
			next[pair{pr[0], mid}] += n
			next[pair{mid, pr[1]}] += n
		}
		pairs = next
	}

	elements := map[byte]uint64{p.template[len(p.template)-1]: 1}
	for pr, n := range pairs {
		elements[pr[0]] += n
	}
	most, least := uint64(0), uint64(math.MaxUint64)
	for _, n := range elements {
		most, least = max(most, n), min(least, n)
	}
	return most - least, nil
}

// Part1 grows the polymer for 10 steps.
func Part1(text string) (uint64, error) { return Grow(text, 10) }

// Part2 grows the polymer for 40 steps.
func Part2(text string) (uint64, error) { return Grow(text, 40) }
