package day13

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/input"
)

const example = `
6,10
0,14
9,10
0,3
10,4
4,11
6,0
6,12
4,1
0,13
10,12
3,4
3,0
8,4
1,10
2,14
8,10
9,0

fold along y=7
fold along x=5
`

func TestPart1(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 17, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(example)
	require.NoError(t, err)
	assert.Equal(t, "#####\n#...#\n#...#\n#...#\n#####", got)
}

func TestFoldRange(t *testing.T) {
	_, err := Part1("0,0\n9,0\n\nfold along x=2")
	assert.ErrorIs(t, err, ErrFoldRange)
}

func TestBadInput(t *testing.T) {
	_, err := Part1("1,2\n\nfold along z=3")
	assert.ErrorIs(t, err, input.ErrParse)

	_, err = Part1("1,2")
	assert.ErrorIs(t, err, input.ErrParse)

	_, err = Part1("1,2,3\n\nfold along x=1")
	assert.ErrorIs(t, err, input.ErrParse)
}
