// Package day16 solves "Packet Decoder": the BITS transmission format.
package day16

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/input"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// Sentinel errors for decoding.
var (
	// ErrTruncated indicates the transmission ended inside a packet.
	ErrTruncated = errors.New("day16: transmission truncated")
	// ErrBadPacket indicates an operator with the wrong number of operands
	// or a literal that does not fit 64 bits.
	ErrBadPacket = errors.New("day16: malformed packet")
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   16,
		Title: "Packet Decoder",
		Part1: puzzle.Part(Part1),
		Part2: puzzle.Part(Part2),
	})
}

// Packet type IDs.
const (
	typeSum = iota
	typeProduct
	typeMin
	typeMax
	typeLiteral
	typeGreater
	typeLess
	typeEqual
)

// Packet is one decoded BITS packet.
type Packet struct {
	Version int
	Type    int
	Value   uint64 // literal packets only
	Sub     []Packet
}

// VersionSum adds the versions of p and all nested packets.
func (p Packet) VersionSum() int {
	sum := p.Version
	for _, s := range p.Sub {
		sum += s.VersionSum()
	}
	return sum
}

// Eval computes the expression p encodes.
func (p Packet) Eval() (uint64, error) {
	if p.Type == typeLiteral {
		return p.Value, nil
	}
	vals := make([]uint64, len(p.Sub))
	for i, s := range p.Sub {
		v, err := s.Eval()
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	switch p.Type {
	case typeGreater, typeLess, typeEqual:
		if len(vals) != 2 {
			return 0, fmt.Errorf("%w: comparison type %d has %d operands", ErrBadPacket, p.Type, len(vals))
		}
	default:
		if len(vals) == 0 {
			return 0, fmt.Errorf("%w: operator type %d has no operands", ErrBadPacket, p.Type)
		}
	}
	var acc uint64
	switch p.Type {
	case typeSum:
		for _, v := range vals {
			acc += v
		}
	case typeProduct:
		acc = 1
		for _, v := range vals {
			acc *= v
		}
	case typeMin:
		acc = vals[0]
		for _, v := range vals[1:] {
			acc = min(acc, v)
		}
	case typeMax:
		acc = vals[0]
		for _, v := range vals[1:] {
			acc = max(acc, v)
		}
	case typeGreater:
		acc = b2u(vals[0] > vals[1])
	case typeLess:
		acc = b2u(vals[0] < vals[1])
	case typeEqual:
		acc = b2u(vals[0] == vals[1])
	}
	return acc, nil
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// reader hands out bits most significant first.
type reader struct {
	data []byte
	pos  int // bit offset
}

func (r *reader) remaining() int { return len(r.data)*8 - r.pos }

func (r *reader) read(n int) (uint64, error) {
	if n > r.remaining() {
		return 0, fmt.Errorf("%w: need %d bits at offset %d", ErrTruncated, n, r.pos)
	}
	var v uint64
	for range n {
		bit := r.data[r.pos/8] >> (7 - r.pos%8) & 1
		v = v<<1 | uint64(bit)
		r.pos++
	}
	return v, nil
}

func (r *reader) packet() (Packet, error) {
	version, err := r.read(3)
	if err != nil {
		return Packet{}, err
	}
	typ, err := r.read(3)
	if err != nil {
		return Packet{}, err
	}
	p := Packet{Version: int(version), Type: int(typ)}
	if p.Type == typeLiteral {
		p.Value, err = r.literal()
		return p, err
	}

	lengthType, err := r.read(1)
	if err != nil {
		return Packet{}, err
	}
	if lengthType == 0 {
		bitLen, err := r.read(15)
		if err != nil {
			return Packet{}, err
		}
		end := r.pos + int(bitLen)
		if int(bitLen) > r.remaining() {
			return Packet{}, fmt.Errorf("%w: sub-packets need %d bits", ErrTruncated, bitLen)
		}
		for r.pos < end {
			sub, err := r.packet()
			if err != nil {
				return Packet{}, err
			}
			p.Sub = append(p.Sub, sub)
		}
		if r.pos != end {
			return Packet{}, fmt.Errorf("%w: sub-packets overrun declared length", ErrBadPacket)
		}
		return p, nil
	}

	count, err := r.read(11)
	if err != nil {
		return Packet{}, err
	}
	for range count {
		sub, err := r.packet()
		if err != nil {
			return Packet{}, err
		}
		p.Sub = append(p.Sub, sub)
	}
	return p, nil
}

// literal reads 5-bit groups until one has a clear continuation bit.
func (r *reader) literal() (uint64, error) {
	var v uint64
	for groups := 1; ; groups++ {
		g, err := r.read(5)
		if err != nil {
			return 0, err
		}
		if groups > 16 {
			return 0, fmt.Errorf("%w: literal exceeds 64 bits", ErrBadPacket)
		}
		v = v<<4 | g&0xF
		if g&0x10 == 0 {
			return v, nil
		}
	}
}

// Decode parses the outermost packet of a hexadecimal transmission. Trailing
// padding bits are ignored.
func Decode(text string) (Packet, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Packet{}, input.ErrEmpty
	}
	data, err := hex.DecodeString(text)
	if err != nil {
		return Packet{}, fmt.Errorf("%w: %w", input.ErrParse, err)
	}
	r := &reader{data: data}
	return r.packet()
}

// Part1 sums the version numbers of every packet.
func Part1(text string) (int, error) {
	p, err := Decode(text)
	if err != nil {
		return 0, err
	}
	return p.VersionSum(), nil
}

// Part2 evaluates the expression the transmission encodes.
func Part2(text string) (uint64, error) {
	p, err := Decode(text)
	if err != nil {
		return 0, err
	}
	return p.Eval()
}
