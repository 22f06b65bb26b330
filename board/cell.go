package board

import "fmt"

type Color byte

const (
	Black Color = iota
	White
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("bad color: %q", text)
	}
	return nil
}

// ColorOf is the fixed color of a cell: a1, whose file+rank is even,
// is black.
func ColorOf(c Coord) Color {
	if (c.File()+c.Rank())%2 == 0 {
		return Black
	}
	return White
}

// Cell is a single board slot.
type Cell struct {
	occupant *Piece
	activity int
	color    Color
}

func (c *Cell) Occupant() *Piece {
	return c.occupant
}

func (c *Cell) Activity() int {
	return c.activity
}

func (c *Cell) Color() Color {
	return c.color
}

func (c *Cell) set(p *Piece) {
	c.occupant = p
}

func (c *Cell) resetActivity() {
	c.activity = 0
}

func (c *Cell) bumpActivity() {
	c.activity++
}
