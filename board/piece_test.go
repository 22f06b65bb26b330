package board

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKingRule(t *testing.T) {
	r := King.Rule()
	if !r.Legal(E4, E4) {
		t.Error("distance 0 should satisfy the king rule")
	}
	if !r.Legal(E4, F5) || !r.Legal(E4, D3) || !r.Legal(A1, B2) {
		t.Error("diagonal step rejected")
	}
	if r.Legal(E4, E6) || r.Legal(E4, G4) || r.Legal(A1, H8) {
		t.Error("long move accepted")
	}

	reach := r.Reach(E4)
	if reach.Has(E4) {
		t.Error("reach includes the origin")
	}
	want := []Coord{D3, E3, F3, D4, F4, D5, E5, F5}
	if diff := cmp.Diff(want, reach.Coords()); diff != "" {
		t.Errorf("reach(e4) (-want +got):\n%s", diff)
	}
	for _, c := range All() {
		got := r.Reach(c)
		for _, d := range All() {
			if got.Has(d) != (c.Distance(d) == 1) {
				t.Errorf("reach(%s) has %s = %v", c, d, got.Has(d))
			}
		}
	}
}

func TestKind(t *testing.T) {
	k, err := ParseKind("king")
	if err != nil || k != King {
		t.Fatalf("ParseKind=%v,%v", k, err)
	}
	if _, err := ParseKind("queen"); err == nil {
		t.Error("parsed queen")
	}
	if King.Glyph() != "K" || King.String() != "king" {
		t.Errorf("king = %q %q", King.Glyph(), King.String())
	}
	if NoKind.Valid() || Kind(9).Valid() {
		t.Error("invalid kinds report valid")
	}
}

func TestPieceAccessors(t *testing.T) {
	p := NewPiece(King, G2)
	if p.Kind() != King || p.Glyph() != "K" || p.Start() != G2 {
		t.Errorf("piece=%v", p)
	}
	if at, ok := p.Position(); !ok || at != G2 {
		t.Errorf("position=%s,%v", at, ok)
	}
	if p.String() != "king@g2" {
		t.Errorf("String()=%q", p.String())
	}
}

func TestRecords(t *testing.T) {
	ps := kings(E1, E2)
	b := mustBoard(t, ps)
	b.Move(E1, E2)

	rs := Records(ps)
	e2 := E2
	want := []Record{
		{Type: "king", Start: E1, Current: &e2},
		{Type: "king", Start: E2, Current: nil},
	}
	if diff := cmp.Diff(want, rs); diff != "" {
		t.Errorf("records (-want +got):\n%s", diff)
	}

	data, err := json.Marshal(rs)
	if err != nil {
		t.Fatal(err)
	}
	const wantJSON = `[{"type":"king","startingPosition":"e1","currentPosition":"e2"},` +
		`{"type":"king","startingPosition":"e2","currentPosition":null}]`
	if string(data) != wantJSON {
		t.Errorf("json=%s", data)
	}

	var back []Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	pieces, err := FromRecords(back)
	if err != nil {
		t.Fatal(err)
	}
	if at, ok := pieces[0].Position(); !ok || at != E2 || pieces[0].Start() != E1 {
		t.Errorf("piece 0 = %v", pieces[0])
	}
	if _, ok := pieces[1].Position(); ok {
		t.Errorf("piece 1 = %v", pieces[1])
	}
}

func TestFromRecordsErrors(t *testing.T) {
	if _, err := FromRecords([]Record{{Type: "bishop", Start: A1}}); err == nil {
		t.Error("unknown type accepted")
	}
	if _, err := FromRecords([]Record{{Type: "king", Start: NoCoord}}); !errors.Is(err, ErrInvalidCoord) {
		t.Errorf("err=%v", err)
	}
	bad := Coord(70)
	if _, err := FromRecords([]Record{{Type: "king", Start: A1, Current: &bad}}); !errors.Is(err, ErrInvalidCoord) {
		t.Errorf("err=%v", err)
	}
	var rs []Record
	if err := json.Unmarshal([]byte(`[{"type":"king","startingPosition":"z9"}]`), &rs); err == nil {
		t.Error("bad coordinate decoded")
	}
}

func TestSet(t *testing.T) {
	s := SetOf(A1, H8, E4, NoCoord)
	if s.Len() != 3 {
		t.Errorf("len=%d", s.Len())
	}
	if !s.Has(H8) || s.Has(E5) || s.Has(NoCoord) {
		t.Error("membership")
	}
	if diff := cmp.Diff([]Coord{A1, E4, H8}, s.Coords()); diff != "" {
		t.Errorf("coords (-want +got):\n%s", diff)
	}
	var zero Set
	if len(zero.Coords()) != 0 {
		t.Error("empty set has members")
	}
}

func TestSnapshotJSON(t *testing.T) {
	b := mustBoard(t, kings(A1))
	b.Refresh()
	s := b.Snapshot()
	data, err := json.Marshal(&s)
	if err != nil {
		t.Fatal(err)
	}
	var back Snapshot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s, back); diff != "" {
		t.Errorf("snapshot json (-want +got):\n%s", diff)
	}
}
