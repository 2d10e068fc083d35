package day17

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/input"
)

const example = "target area: x=20..30, y=-10..-5\n"

func TestPart1(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 45, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 112, got)
}

func TestHit(t *testing.T) {
	a, err := parse(example)
	require.NoError(t, err)

	assert.True(t, a.hit(7, 2))
	assert.True(t, a.hit(6, 3))
	assert.True(t, a.hit(9, 0))
	assert.True(t, a.hit(6, 9))
	assert.False(t, a.hit(17, -4))
}

// No triangular number lies in 4..5, so no shot comes to rest over the
// target and every hit lands within two steps of launch.
const noRest = "target area: x=4..5, y=-10..-5"

func TestStalls(t *testing.T) {
	a, err := parse(example)
	require.NoError(t, err)
	assert.True(t, a.stalls())

	a, err = parse(noRest)
	require.NoError(t, err)
	assert.False(t, a.stalls())
}

func TestPart1_NoRestingShot(t *testing.T) {
	got, err := Part1(noRest)
	require.NoError(t, err)
	assert.Zero(t, got)

	hits, err := Part2(noRest)
	require.NoError(t, err)
	assert.Equal(t, 15, hits)
}

func TestBadInput(t *testing.T) {
	_, err := Part1("target area: x=20..30")
	assert.ErrorIs(t, err, input.ErrParse)

	_, err = Part1("target area: x=-30..-20, y=-10..-5")
	assert.ErrorIs(t, err, ErrUnsupportedTarget)

	_, err = Part1("target area: x=20..30, y=5..10")
	assert.ErrorIs(t, err, ErrUnsupportedTarget)
}
