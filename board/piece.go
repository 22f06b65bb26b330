package board

import (
	"fmt"
)

// A Rule is the movement behaviour of one kind of piece. Both methods
// take the cell the piece currently occupies, so a rule can only be
// consulted for a piece that is on the board.
type Rule interface {
	// Legal reports whether the piece may move from `from` to `to`.
	// Board rejects to == from before asking.
	Legal(from, to Coord) bool
	// Reach is the set of cells the piece influences from `from`.
	// It drives the activity overlay, not move legality.
	Reach(from Coord) Set
}

type Kind byte

const (
	NoKind Kind = iota
	King
)

type variant struct {
	name  string
	glyph string
	rule  Rule
}

var variants = [...]variant{
	King: {name: "king", glyph: "K", rule: kingRule{}},
}

func (k Kind) variant() (variant, bool) {
	if k == NoKind || int(k) >= len(variants) {
		return variant{}, false
	}
	return variants[k], true
}

func (k Kind) Valid() bool {
	_, ok := k.variant()
	return ok
}

func (k Kind) String() string {
	if v, ok := k.variant(); ok {
		return v.name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) Glyph() string {
	if v, ok := k.variant(); ok {
		return v.glyph
	}
	return "?"
}

func (k Kind) Rule() Rule {
	v, ok := k.variant()
	if !ok {
		panic(fmt.Sprintf("bad kind: %d", int(k)))
	}
	return v.rule
}

// Kinds lists every piece kind.
func Kinds() []Kind {
	var out []Kind
	for k := range variants {
		if Kind(k).Valid() {
			out = append(out, Kind(k))
		}
	}
	return out
}

func ParseKind(name string) (Kind, error) {
	for k := range variants {
		if k != int(NoKind) && variants[k].name == name {
			return Kind(k), nil
		}
	}
	return NoKind, fmt.Errorf("unknown piece type: %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("marshal: bad kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// kingRule moves and reaches one step in any direction.
type kingRule struct{}

func (kingRule) Legal(from, to Coord) bool {
	df := abs(to.File() - from.File())
	dr := abs(to.Rank() - from.Rank())
	return df <= 1 && dr <= 1
}

func (kingRule) Reach(from Coord) Set {
	return neighbors(from)
}

// Piece is a single piece. Its current position is maintained by the
// Board it is placed on; a piece is on at most one board at a time.
type Piece struct {
	kind  Kind
	start Coord
	at    Coord
	board *Board
}

// NewPiece returns a piece of the given kind whose current position
// is its starting position.
func NewPiece(kind Kind, start Coord) *Piece {
	if !kind.Valid() {
		panic(fmt.Sprintf("NewPiece: bad kind %d", int(kind)))
	}
	return &Piece{kind: kind, start: start, at: start}
}

func (p *Piece) Kind() Kind {
	return p.kind
}

func (p *Piece) Glyph() string {
	return p.kind.Glyph()
}

func (p *Piece) Start() Coord {
	return p.start
}

// Position returns the piece's current cell, or false if the piece
// has been captured or taken off the board.
func (p *Piece) Position() (Coord, bool) {
	return p.at, p.at.Valid()
}

// target is the cell Place puts the piece on.
func (p *Piece) target() Coord {
	if p.at.Valid() {
		return p.at
	}
	return p.start
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s@%s", p.kind, p.at)
}
