// Package day17 solves "Trick Shot": launching a probe into a target area.
package day17

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// ErrUnsupportedTarget is returned for target areas that are not entirely
// to the right of and below the launcher.
var ErrUnsupportedTarget = errors.New("day17: target must lie at x > 0, y < 0")

// ErrNoHit is returned when no initial velocity reaches the target.
var ErrNoHit = errors.New("day17: target cannot be hit")

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   17,
		Title: "Trick Shot",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

var targetRE = regexp.MustCompile(`^target area: x=(-?\d+)\.\.(-?\d+), y=(-?\d+)\.\.(-?\d+)$`)

type area struct {
	xMin, xMax, yMin, yMax int
}

func (a area) contains(x, y int) bool {
	return x >= a.xMin && x <= a.xMax && y >= a.yMin && y <= a.yMax
}

func parse(text string) (area, error) {
	text = strings.TrimSpace(text)
	m := targetRE.FindStringSubmatch(text)
	if m == nil {
		return area{}, fmt.Errorf("%w: %q", input.ErrParse, text)
	}
	var v [4]int
	for i := range v {
		n, err := input.Int[int](m[i+1])
		if err != nil {
			return area{}, err
		}
		v[i] = n
	}
	a := area{xMin: min(v[0], v[1]), xMax: max(v[0], v[1]), yMin: min(v[2], v[3]), yMax: max(v[2], v[3])}
	if a.xMin <= 0 || a.yMax >= 0 {
		return area{}, fmt.Errorf("%w: %s", ErrUnsupportedTarget, text)
	}
	return a, nil
}

// Part1 returns the highest y reachable while still hitting the target. A
// probe launched upward at vy comes back through y=0 with speed -(vy+1), so
// when some vx comes to rest above the target the best shot uses
// vy = -yMin-1 and peaks at the triangular number of vy. Targets no vx stops
// over are searched exhaustively.
func Part1(text string) (int, error) {
	a, err := parse(text)
	if err != nil {
		return 0, err
	}
	if a.stalls() {
		return a.yMin * (a.yMin + 1) / 2, nil
	}
	best, found := 0, false
	a.search(func(_, vy int) {
		found = true
		if vy > 0 {
			best = max(best, vy*(vy+1)/2)
		}
	})
	if !found {
		return 0, fmt.Errorf("%w: %+v", ErrNoHit, a)
	}
	return best, nil
}

// Part2 counts the initial velocities that put the probe inside the target
// after some step.
func Part2(text string) (int, error) {
	a, err := parse(text)
	if err != nil {
		return 0, err
	}
	hits := 0
	a.search(func(int, int) { hits++ })
	return hits, nil
}

// stalls reports whether some vx comes to rest inside [xMin, xMax], i.e. a
// triangular number lies in that range.
func (a area) stalls() bool {
	for n, tri := 1, 1; tri <= a.xMax; n, tri = n+1, tri+n+1 {
		if tri >= a.xMin {
			return true
		}
	}
	return false
}

// search calls emit for every initial velocity that reaches the target.
func (a area) search(emit func(vx, vy int)) {
	// Slowest vx whose drag-limited reach n(n+1)/2 can still get to xMin.
	vxMin := int(math.Floor((math.Sqrt(float64(8*a.xMin+1)) - 1) / 2))
	for vx := vxMin; vx <= a.xMax; vx++ {
		for vy := a.yMin; vy <= -a.yMin-1; vy++ {
			if a.hit(vx, vy) {
				emit(vx, vy)
			}
		}
	}
}

func (a area) hit(vx, vy int) bool {
	x, y := 0, 0
	for x <= a.xMax && y >= a.yMin {
		x, y = x+vx, y+vy
		if a.contains(x, y) {
			return true
		}
		if vx > 0 {
			vx--
		}
		vy--
	}
	return false
}
