package board

import (
	"testing"
)

func TestDistance(t *testing.T) {
	if d := E4.Distance(D4); d != 1 {
		t.Errorf("e4-d4 = %d", d)
	}
	if d := E4.Distance(C4); d != 2 {
		t.Errorf("e4-c4 = %d", d)
	}
	if d := A1.Distance(H8); d != 7 {
		t.Errorf("a1-h8 = %d", d)
	}
	if d := B1.Distance(C3); d != 2 {
		t.Errorf("b1-c3 = %d", d)
	}
	for _, a := range All() {
		if a.Distance(a) != 0 {
			t.Errorf("%s-%s != 0", a, a)
		}
		for _, b := range All() {
			if a.Distance(b) != b.Distance(a) {
				t.Fatalf("asymmetric: %s %s", a, b)
			}
			if a != b && a.Distance(b) == 0 {
				t.Fatalf("zero distance: %s %s", a, b)
			}
		}
	}
}

func TestFromFileRank(t *testing.T) {
	cases := []struct {
		file, rank int
		want       Coord
		ok         bool
	}{
		{1, 1, A1, true},
		{5, 1, E1, true},
		{5, 4, E4, true},
		{8, 8, H8, true},
		{0, 1, NoCoord, false},
		{1, 0, NoCoord, false},
		{9, 4, NoCoord, false},
		{4, 9, NoCoord, false},
		{-1, -1, NoCoord, false},
	}
	for _, tc := range cases {
		got, ok := FromFileRank(tc.file, tc.rank)
		if got != tc.want || ok != tc.ok {
			t.Errorf("FromFileRank(%d,%d)=(%s,%v) want (%s,%v)",
				tc.file, tc.rank, got, ok, tc.want, tc.ok)
		}
		if Valid(tc.file, tc.rank) != tc.ok {
			t.Errorf("Valid(%d,%d) != %v", tc.file, tc.rank, tc.ok)
		}
	}
}

func TestOffset(t *testing.T) {
	if c, ok := E1.Offset(-1, 0); !ok || c != D1 {
		t.Errorf("e1-1 = %s %v", c, ok)
	}
	if _, ok := A1.Offset(-1, 0); ok {
		t.Error("a1 file-1 is on the board")
	}
	if _, ok := H8.Offset(0, 1); ok {
		t.Error("h8 rank+1 is on the board")
	}
	if _, ok := NoCoord.Offset(0, 0); ok {
		t.Error("offset from NoCoord")
	}
}

func TestAll(t *testing.T) {
	cs := All()
	if len(cs) != 64 {
		t.Fatalf("len(All())=%d", len(cs))
	}
	for i, c := range cs {
		if int(c) != i || !c.Valid() {
			t.Errorf("All()[%d]=%d", i, c)
		}
	}
	cs[0] = H8
	if All()[0] != A1 {
		t.Error("All() shares its backing array")
	}
}

func TestParseCoord(t *testing.T) {
	for _, c := range All() {
		got, err := ParseCoord(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCoord(%q)=%s, %v", c.String(), got, err)
		}
	}
	if c, err := ParseCoord("E4"); err != nil || c != E4 {
		t.Errorf("ParseCoord(E4)=%s, %v", c, err)
	}
	for _, bad := range []string{"", "e", "e9", "i1", "e0", "e44", "44"} {
		if _, err := ParseCoord(bad); err == nil {
			t.Errorf("ParseCoord(%q): no error", bad)
		}
	}
	if NoCoord.String() != "-" {
		t.Errorf("NoCoord.String()=%q", NoCoord.String())
	}
}

func TestFileRank(t *testing.T) {
	if E4.File() != 5 || E4.Rank() != 4 {
		t.Errorf("e4 = (%d,%d)", E4.File(), E4.Rank())
	}
	if H1.File() != 8 || H1.Rank() != 1 {
		t.Errorf("h1 = (%d,%d)", H1.File(), H1.Rank())
	}
	if A8.File() != 1 || A8.Rank() != 8 {
		t.Errorf("a8 = (%d,%d)", A8.File(), A8.Rank())
	}
}
