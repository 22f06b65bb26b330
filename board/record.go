package board

import "fmt"

// Record is the plain form of a piece used for persistence and
// transport. Type is the variant tag, e.g. "king".
type Record struct {
	Type    string `json:"type"`
	Start   Coord  `json:"startingPosition"`
	Current *Coord `json:"currentPosition"`
}

func (p *Piece) Record() Record {
	r := Record{Type: p.kind.String(), Start: p.start}
	if at, ok := p.Position(); ok {
		r.Current = &at
	}
	return r
}

func Records(pieces []*Piece) []Record {
	out := make([]Record, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, p.Record())
	}
	return out
}

func (r Record) Piece() (*Piece, error) {
	kind, err := ParseKind(r.Type)
	if err != nil {
		return nil, err
	}
	if !r.Start.Valid() {
		return nil, fmt.Errorf("%s: %w", r.Type, ErrInvalidCoord)
	}
	p := NewPiece(kind, r.Start)
	p.at = NoCoord
	if r.Current != nil {
		if !r.Current.Valid() {
			return nil, fmt.Errorf("%s: %w", r.Type, ErrInvalidCoord)
		}
		p.at = *r.Current
	}
	return p, nil
}

func FromRecords(records []Record) ([]*Piece, error) {
	out := make([]*Piece, 0, len(records))
	for i, r := range records {
		p, err := r.Piece()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}
