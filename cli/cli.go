package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nelhage/fieldboard/board"
)

type Glyphs struct {
	King  string
	Empty string
}

var DefaultGlyphs = Glyphs{
	King:  "K",
	Empty: " ",
}

var UnicodeGlyphs = Glyphs{
	King:  "♔",
	Empty: "·",
}

// ParseGlyphs returns the glyph set named "ascii" or "unicode".
func ParseGlyphs(name string) (*Glyphs, error) {
	switch name {
	case "", "ascii":
		return &DefaultGlyphs, nil
	case "unicode":
		return &UnicodeGlyphs, nil
	}
	return nil, fmt.Errorf("unknown glyph set: %q", name)
}

func (g *Glyphs) For(p *board.PieceView) string {
	if p == nil {
		return g.Empty
	}
	switch p.Kind {
	case board.King:
		return g.King
	default:
		return p.Glyph
	}
}

func RenderBoard(g *Glyphs, out io.Writer, s *board.Snapshot) {
	if g == nil {
		g = &DefaultGlyphs
	}
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	for rank := board.Size; rank >= 1; rank-- {
		fmt.Fprintf(w, "%d.\t", rank)
		for file := 1; file <= board.Size; file++ {
			c, _ := board.FromFileRank(file, rank)
			fmt.Fprintf(w, "[%s]\t", g.For(s.At(c).Occupant))
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for file := 0; file < board.Size; file++ {
		fmt.Fprintf(w, "%c.\t", 'a'+file)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
}

// RenderActivity prints the activity count of every cell, with
// occupied cells marked by a trailing '*'.
func RenderActivity(out io.Writer, s *board.Snapshot) {
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	for rank := board.Size; rank >= 1; rank-- {
		fmt.Fprintf(w, "%d.\t", rank)
		for file := 1; file <= board.Size; file++ {
			c, _ := board.FromFileRank(file, rank)
			cell := s.At(c)
			mark := ""
			if cell.Occupant != nil {
				mark = "*"
			}
			fmt.Fprintf(w, "%d%s\t", cell.Activity, mark)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for file := 0; file < board.Size; file++ {
		fmt.Fprintf(w, "%c.\t", 'a'+file)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
}

func RenderPieces(out io.Writer, pieces []*board.Piece) {
	title := cases.Title(language.English)
	w := tabwriter.NewWriter(out, 4, 8, 1, ' ', 0)
	for _, p := range pieces {
		at, ok := p.Position()
		where := at.String()
		if !ok {
			where = "off board"
		}
		fmt.Fprintf(w, "%s\t%s\tfrom %s\n", title.String(p.Kind().String()), where, p.Start())
	}
	w.Flush()
	fmt.Fprintf(out, "pieces: %d\n", len(pieces))
}
