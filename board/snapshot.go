package board

// PieceView is a detached description of a placed piece.
type PieceView struct {
	Kind  Kind   `json:"type"`
	Glyph string `json:"glyph"`
	Start Coord  `json:"startingPosition"`
	At    Coord  `json:"currentPosition"`
}

type CellView struct {
	Occupant *PieceView `json:"occupant"`
	Activity int        `json:"activity"`
	Color    Color      `json:"color"`
}

// Snapshot is a copy of every cell, indexed by Coord. Nothing in a
// Snapshot aliases the Board it was taken from.
type Snapshot [Size * Size]CellView

func (s Snapshot) At(c Coord) CellView {
	return s[c]
}

func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for i := range b.cells {
		cell := &b.cells[i]
		s[i] = CellView{Activity: cell.activity, Color: cell.color}
		if p := cell.occupant; p != nil {
			s[i].Occupant = &PieceView{
				Kind:  p.kind,
				Glyph: p.Glyph(),
				Start: p.start,
				At:    p.at,
			}
		}
	}
	return s
}
