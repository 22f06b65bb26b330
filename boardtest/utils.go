package boardtest

import (
	"strings"

	"github.com/nelhage/fieldboard/board"
)

func Coord(s string) board.Coord {
	c, e := board.ParseCoord(s)
	if e != nil {
		panic(e)
	}
	return c
}

// Kings returns a king for each space-separated coordinate in s.
func Kings(s string) []*board.Piece {
	if s == "" {
		return nil
	}
	var ps []*board.Piece
	for _, b := range strings.Split(s, " ") {
		ps = append(ps, board.NewPiece(board.King, Coord(b)))
	}
	return ps
}

func Board(s string) *board.Board {
	b, e := board.FromPieces(Kings(s))
	if e != nil {
		panic(e)
	}
	return b
}

// Occupied lists the occupied cells of b, space-separated.
func Occupied(b *board.Board) string {
	var bits []string
	for _, p := range b.Pieces() {
		at, _ := p.Position()
		bits = append(bits, at.String())
	}
	return strings.Join(bits, " ")
}
