package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/input"
)

const example = `
199
200
208
210
200
207
240
269
260
263
`

func TestPart1(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestShortInput(t *testing.T) {
	got, err := Part2("1\n2\n3")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestBadInput(t *testing.T) {
	_, err := Part1("12\nfoo")
	assert.ErrorIs(t, err, input.ErrParse)

	_, err = Part1("")
	assert.ErrorIs(t, err, input.ErrEmpty)
}
