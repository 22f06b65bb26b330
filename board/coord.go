package board

import (
	"fmt"
)

const Size = 8

// Coord identifies one of the 64 cells. Cells are numbered rank by
// rank starting from a1, so A1=0, B1=1, ..., H8=63.
type Coord int8

// NoCoord is the position of a piece that is not on the board.
const NoCoord Coord = -1

const (
	A1 Coord = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Valid reports whether a computed 1-based (file, rank) pair lies on
// the board.
func Valid(file, rank int) bool {
	return file >= 1 && file <= Size && rank >= 1 && rank <= Size
}

func FromFileRank(file, rank int) (Coord, bool) {
	if !Valid(file, rank) {
		return NoCoord, false
	}
	return Coord((rank-1)*Size + (file - 1)), true
}

func (c Coord) Valid() bool {
	return c >= A1 && c <= H8
}

// File returns the 1-based file (a=1).
func (c Coord) File() int {
	return int(c)%Size + 1
}

// Rank returns the 1-based rank.
func (c Coord) Rank() int {
	return int(c)/Size + 1
}

func (c Coord) Offset(df, dr int) (Coord, bool) {
	if !c.Valid() {
		return NoCoord, false
	}
	return FromFileRank(c.File()+df, c.Rank()+dr)
}

// Distance is the Chebyshev distance between two cells.
func (c Coord) Distance(o Coord) int {
	df := abs(c.File() - o.File())
	dr := abs(c.Rank() - o.Rank())
	if df > dr {
		return df
	}
	return dr
}

func (c Coord) bit() Set {
	return Set(1) << uint(c)
}

func (c Coord) String() string {
	if !c.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + c.File() - 1), byte('1' + c.Rank() - 1)})
}

func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return NoCoord, fmt.Errorf("bad coordinate: %q", s)
	}
	f := s[0]
	if f >= 'A' && f <= 'H' {
		f += 'a' - 'A'
	}
	c, ok := FromFileRank(int(f)-'a'+1, int(s[1])-'1'+1)
	if !ok {
		return NoCoord, fmt.Errorf("bad coordinate: %q", s)
	}
	return c, nil
}

func (c Coord) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("marshal: invalid coordinate %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Coord) UnmarshalText(text []byte) error {
	v, err := ParseCoord(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

var all = func() []Coord {
	out := make([]Coord, 0, Size*Size)
	for c := A1; c <= H8; c++ {
		out = append(out, c)
	}
	return out
}()

// All returns every valid coordinate in A1..H8 order.
func All() []Coord {
	out := make([]Coord, len(all))
	copy(out, all)
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
