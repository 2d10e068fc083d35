package puzzle

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrUnknownDay indicates that no solution is registered for a day.
	ErrUnknownDay = errors.New("puzzle: unknown day")
	// ErrNoInput indicates that the input for a day could not be read.
	ErrNoInput = errors.New("puzzle: input not available")
	// ErrBadSolution indicates a Solution without a day in 1..25 or without parts.
	ErrBadSolution = errors.New("puzzle: invalid solution")
)

// PartFunc solves one half of a day from the raw input text.
type PartFunc func(text string) (any, error)

// Solution describes one day.
type Solution struct {
	Day   int
	Title string
	Part1 PartFunc
	Part2 PartFunc
}

// Registry maps days to solutions. The zero value is not usable; see NewRegistry.
type Registry struct {
	mu   sync.RWMutex
	days map[int]Solution
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{days: make(map[int]Solution)}
}

// Register adds s. It panics on an invalid solution or a day registered
// twice, both of which are programming errors in the day packages.
func (r *Registry) Register(s Solution) {
	if s.Day < 1 || s.Day > 25 || s.Part1 == nil || s.Part2 == nil {
		panic(fmt.Errorf("%w: day %d", ErrBadSolution, s.Day))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.days[s.Day]; dup {
		panic(fmt.Errorf("%w: day %d registered twice", ErrBadSolution, s.Day))
	}
	r.days[s.Day] = s
}

// Lookup returns the solution for day.
func (r *Registry) Lookup(day int) (Solution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.days[day]
	if !ok {
		return Solution{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := make([]int, 0, len(r.days))
	for d := range r.days {
		days = append(days, d)
	}
	slices.Sort(days)

	return days
}

// Default is the registry day packages register into.
var Default = NewRegistry()

// Register adds s to Default.
func Register(s Solution) { Default.Register(s) }

// Lookup finds day in Default.
func Lookup(day int) (Solution, error) { return Default.Lookup(day) }

// Days lists the days registered in Default.
func Days() []int { return Default.Days() }

// Part adapts a typed solver to a PartFunc.
func Part[T any](f func(string) (T, error)) PartFunc {
	return func(text string) (any, error) {
		v, err := f(text)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
