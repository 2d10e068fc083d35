package day16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/input"
)

func TestDecode_Literal(t *testing.T) {
	p, err := Decode("D2FE28")
	require.NoError(t, err)
	assert.Equal(t, Packet{Version: 6, Type: typeLiteral, Value: 2021}, p)
}

func TestDecode_Operators(t *testing.T) {
	p, err := Decode("38006F45291200")
	require.NoError(t, err)
	require.Len(t, p.Sub, 2)
	assert.Equal(t, 1, p.Version)
	assert.Equal(t, typeLess, p.Type)
	assert.Equal(t, uint64(10), p.Sub[0].Value)
	assert.Equal(t, uint64(20), p.Sub[1].Value)

	p, err = Decode("EE00D40C823060")
	require.NoError(t, err)
	require.Len(t, p.Sub, 3)
	assert.Equal(t, typeMax, p.Type)
	for i, want := range []uint64{1, 2, 3} {
		assert.Equal(t, want, p.Sub[i].Value)
	}
}

func TestPart1(t *testing.T) {
	tests := map[string]int{
		"D2FE28":                         6,
		"EE00D40C823060":                 14,
		"38006F45291200":                 9,
		"8A004A801A8002F478":             16,
		"620080001611562C8802118E34":     12,
		"C0015000016115A2E0802F182340":   23,
		"A0016C880162017C3686B18A3D4780": 31,
	}
	for hexText, want := range tests {
		got, err := Part1(hexText)
		require.NoError(t, err, hexText)
		assert.Equal(t, want, got, hexText)
	}
}

func TestPart2(t *testing.T) {
	tests := map[string]uint64{
		"C200B40A82":                 3,
		"04005AC33890":               54,
		"880086C3E88112":             7,
		"CE00C43D881120":             9,
		"D8005AC2A8F0":               1,
		"F600BC2D8F":                 0,
		"9C005AC2F8F0":               0,
		"9C0141080250320F1802104A08": 1,
	}
	for hexText, want := range tests {
		got, err := Part2(hexText)
		require.NoError(t, err, hexText)
		assert.Equal(t, want, got, hexText)
	}
}

func TestErrors(t *testing.T) {
	_, err := Part1("")
	assert.ErrorIs(t, err, input.ErrEmpty)

	_, err = Part1("XYZ0")
	assert.ErrorIs(t, err, input.ErrParse)

	// Literal header whose groups all keep the continuation bit set.
	_, err = Part1("D2FE")
	assert.ErrorIs(t, err, ErrTruncated)

	// Operator declaring two sub-packets but carrying none.
	_, err = Part1("EE00")
	assert.ErrorIs(t, err, ErrTruncated)
}
