package board

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateOccupant = errors.New("duplicate occupant")
	ErrOccupied          = errors.New("cell is occupied")
	ErrInvalidCoord      = errors.New("invalid coordinate")
	ErrInvalidKind       = errors.New("invalid piece kind")
	ErrOnOtherBoard      = errors.New("piece is placed on another board")
)

// InitializationError is returned when a set of pieces cannot be
// placed: two of them resolve to the same cell, a piece has no valid
// kind, or a piece is still on another board.
type InitializationError struct {
	At  Coord
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("cannot initialize board: %s: %v", e.At, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// Board owns the 64 cells and every piece placed on them. A Board is
// not safe for concurrent use; callers sharing one must serialize
// access.
type Board struct {
	cells [Size * Size]Cell
}

func New() *Board {
	b := &Board{}
	b.init()
	return b
}

// FromPieces builds a board holding the given pieces. It returns no
// board at all if any two pieces collide.
func FromPieces(pieces []*Piece) (*Board, error) {
	b := New()
	if err := b.Place(pieces...); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) init() {
	for _, c := range all {
		b.cells[c] = Cell{color: ColorOf(c)}
	}
}

// Reset takes every piece off the board and clears all activity.
func (b *Board) Reset() {
	for i := range b.cells {
		if p := b.cells[i].occupant; p != nil {
			p.at = NoCoord
			p.board = nil
		}
	}
	b.init()
}

// Place puts each piece on its current position, or its starting
// position if it has none. Place either places every piece or, on a
// collision, returns an *InitializationError and changes nothing.
func (b *Board) Place(pieces ...*Piece) error {
	var claimed Set
	targets := make([]Coord, len(pieces))
	for i, p := range pieces {
		if p == nil {
			targets[i] = NoCoord
			continue
		}
		c := p.target()
		targets[i] = c
		if !c.Valid() {
			continue
		}
		if !p.kind.Valid() {
			return &InitializationError{At: c, Err: ErrInvalidKind}
		}
		if p.board != nil && p.board != b {
			return &InitializationError{At: c, Err: ErrOnOtherBoard}
		}
		if b.cells[c].occupant != nil || claimed.Has(c) {
			return &InitializationError{At: c, Err: ErrDuplicateOccupant}
		}
		claimed = claimed.Add(c)
	}
	for i, p := range pieces {
		c := targets[i]
		if !c.Valid() {
			continue
		}
		b.cells[c].set(p)
		p.at = c
		p.board = b
	}
	return nil
}

// Put places a new piece of the given kind on an empty cell.
func (b *Board) Put(kind Kind, at Coord) (*Piece, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	if !at.Valid() {
		return nil, ErrInvalidCoord
	}
	if b.cells[at].occupant != nil {
		return nil, ErrOccupied
	}
	p := NewPiece(kind, at)
	p.board = b
	b.cells[at].set(p)
	return p, nil
}

func (b *Board) At(c Coord) *Piece {
	if !c.Valid() {
		return nil
	}
	return b.cells[c].occupant
}

// Pieces returns the placed pieces in A1..H8 order.
func (b *Board) Pieces() []*Piece {
	var out []*Piece
	for i := range b.cells {
		if p := b.cells[i].occupant; p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Legal reports whether Move(from, to) would be applied.
func (b *Board) Legal(from, to Coord) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	p := b.cells[from].occupant
	if p == nil {
		return false
	}
	return p.kind.Rule().Legal(from, to)
}

// Reach returns the cells influenced by the occupant of `at`, or the
// empty set if `at` is empty.
func (b *Board) Reach(at Coord) Set {
	p := b.At(at)
	if p == nil {
		return 0
	}
	return p.kind.Rule().Reach(at)
}

// Move moves the occupant of `from` to `to`, capturing any occupant
// of `to`. An illegal move leaves the board untouched and returns
// ok=false; it is not an error.
func (b *Board) Move(from, to Coord) (captured *Piece, ok bool) {
	if !b.Legal(from, to) {
		return nil, false
	}
	mover := b.cells[from].occupant
	if victim := b.cells[to].occupant; victim != nil {
		victim.at = NoCoord
		victim.board = nil
		captured = victim
	}
	b.cells[from].set(nil)
	b.cells[to].set(mover)
	mover.at = to
	return captured, true
}

// Remove takes the occupant of `at` off the board and returns it.
func (b *Board) Remove(at Coord) *Piece {
	p := b.At(at)
	if p == nil {
		return nil
	}
	p.at = NoCoord
	p.board = nil
	b.cells[at].set(nil)
	return p
}

// Refresh recomputes every cell's activity from scratch: each piece
// counts once on its own cell and once on every cell it reaches.
func (b *Board) Refresh() {
	for i := range b.cells {
		b.cells[i].resetActivity()
	}
	for i := range b.cells {
		p := b.cells[i].occupant
		if p == nil {
			continue
		}
		from := Coord(i)
		b.cells[from].bumpActivity()
		p.kind.Rule().Reach(from).Each(func(c Coord) {
			b.cells[c].bumpActivity()
		})
	}
}
