package puzzle_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/puzzle"
)

var errBoom = errors.New("boom")

func lineCount(text string) (any, error) { return len(strings.Fields(text)), nil }
func upper(text string) (any, error)     { return strings.ToUpper(strings.TrimSpace(text)), nil }
func failing(string) (any, error)        { return nil, errBoom }

func newRegistry() *puzzle.Registry {
	r := puzzle.NewRegistry()
	r.Register(puzzle.Solution{Day: 3, Title: "third", Part1: lineCount, Part2: upper})
	r.Register(puzzle.Solution{Day: 1, Title: "first", Part1: lineCount, Part2: failing})

	return r
}

// fixedClock advances one millisecond per call.
func fixedClock() func() time.Time {
	t := time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func TestRegistry_LookupAndDays(t *testing.T) {
	r := newRegistry()
	assert.Equal(t, []int{1, 3}, r.Days())

	s, err := r.Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, "third", s.Title)

	_, err = r.Lookup(2)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestRegistry_RegisterPanics(t *testing.T) {
	r := newRegistry()
	assert.Panics(t, func() {
		r.Register(puzzle.Solution{Day: 3, Part1: lineCount, Part2: upper})
	}, "duplicate day")
	assert.Panics(t, func() {
		r.Register(puzzle.Solution{Day: 0, Part1: lineCount, Part2: upper})
	}, "day out of range")
	assert.Panics(t, func() {
		r.Register(puzzle.Solution{Day: 4, Part1: lineCount})
	}, "missing part")
}

func TestRunner_Run(t *testing.T) {
	logger, hook := test.NewNullLogger()
	fsys := fstest.MapFS{"day03.txt": {Data: []byte("a b\nc\n")}}
	r := puzzle.NewRunner(
		puzzle.WithRegistry(newRegistry()),
		puzzle.WithFS(fsys),
		puzzle.WithLogger(logger),
		puzzle.WithClock(fixedClock()),
	)

	res, err := r.Run(3)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Day)
	assert.Equal(t, "third", res.Title)
	assert.Equal(t, puzzle.PartResult{Part: 1, Answer: 3, Elapsed: time.Millisecond}, res.Parts[0])
	assert.Equal(t, puzzle.PartResult{Part: 2, Answer: "A B\nC", Elapsed: time.Millisecond}, res.Parts[1])

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.InfoLevel, entries[0].Level)
	assert.Equal(t, 3, entries[0].Data["day"])
	assert.Equal(t, 1, entries[0].Data["part"])
	assert.Equal(t, 3, entries[0].Data["answer"])
	assert.Equal(t, time.Millisecond, entries[0].Data["elapsed"])
	assert.Equal(t, 2, entries[1].Data["part"])
}

func TestRunner_MissingInput(t *testing.T) {
	r := puzzle.NewRunner(puzzle.WithRegistry(newRegistry()), puzzle.WithFS(fstest.MapFS{}))

	_, err := r.Run(3)
	assert.ErrorIs(t, err, puzzle.ErrNoInput)
}

func TestRunner_UnknownDay(t *testing.T) {
	r := puzzle.NewRunner(puzzle.WithRegistry(newRegistry()))

	_, err := r.Solve(7, "")
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestRunner_PartError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := puzzle.NewRunner(puzzle.WithRegistry(newRegistry()), puzzle.WithLogger(logger))

	res, err := r.Solve(1, "x y z")
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 3, res.Parts[0].Answer)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.ErrorLevel, last.Level)
	assert.Equal(t, 2, last.Data["part"])
	assert.Equal(t, errBoom, last.Data[logrus.ErrorKey])
}

func TestInputName(t *testing.T) {
	assert.Equal(t, "day01.txt", puzzle.InputName(1))
	assert.Equal(t, "day17.txt", puzzle.InputName(17))
}

func TestPart(t *testing.T) {
	ok := puzzle.Part(func(s string) (int, error) { return len(s), nil })
	v, err := ok("four")
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	bad := puzzle.Part(func(string) (int, error) { return 0, errBoom })
	v, err = bad("")
	assert.ErrorIs(t, err, errBoom)
	assert.Nil(t, v)
}
