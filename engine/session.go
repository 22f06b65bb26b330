package engine

import (
	"io"

	"github.com/nelhage/fieldboard/board"
	"github.com/nelhage/fieldboard/cli"
	"github.com/nelhage/fieldboard/store"
)

// Session is the state one user drives through the command table. It
// is not safe for concurrent use.
type Session struct {
	Board   *board.Board
	Store   store.Store
	Segment Segment
	Glyphs  *cli.Glyphs
	Out     io.Writer

	moves   []board.Move
	listing []string
}

func NewSession(st store.Store, out io.Writer) *Session {
	return &Session{
		Board:   board.New(),
		Store:   st,
		Segment: MainMenu,
		Glyphs:  &cli.DefaultGlyphs,
		Out:     out,
	}
}

func (s *Session) setBoard(b *board.Board) {
	s.Board = b
	s.moves = nil
	s.Segment = BoardDisplay
}

func (s *Session) Moves() []board.Move {
	return s.moves
}
