package board

// Move is a request to move whatever occupies From onto To.
type Move struct {
	From, To Coord
}

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

func (b *Board) Apply(m Move) (*Piece, bool) {
	return b.Move(m.From, m.To)
}
