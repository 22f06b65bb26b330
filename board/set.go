package board

import "github.com/nelhage/fieldboard/bitboard"

var geometry = bitboard.Precompute(Size)

// Set is a set of coordinates, one bit per cell.
type Set uint64

func SetOf(cs ...Coord) Set {
	var s Set
	for _, c := range cs {
		s = s.Add(c)
	}
	return s
}

func (s Set) Add(c Coord) Set {
	if !c.Valid() {
		return s
	}
	return s | c.bit()
}

func (s Set) Has(c Coord) bool {
	return c.Valid() && s&c.bit() != 0
}

func (s Set) Len() int {
	return bitboard.Popcount(uint64(s))
}

// Each calls fn for every member in A1..H8 order.
func (s Set) Each(fn func(Coord)) {
	bits := uint64(s)
	for bits != 0 {
		fn(Coord(bitboard.TrailingZeros(bits)))
		bits &= bits - 1
	}
}

func (s Set) Coords() []Coord {
	out := make([]Coord, 0, s.Len())
	s.Each(func(c Coord) { out = append(out, c) })
	return out
}

func neighbors(c Coord) Set {
	return Set(bitboard.Neighbors(&geometry, uint64(c.bit())))
}
