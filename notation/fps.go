package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/fieldboard/board"
)

// FPS (field position string) writes ranks from 8 down to 1,
// separated by '/'. Each rank is a comma-separated list of piece
// glyphs and runs of empty cells, written "x" or "xN".
//
//   x8/x8/x8/x8/x8/x8/x8/x4,K,x3
func FormatFPS(s *board.Snapshot) string {
	var rows []string
	for rank := board.Size; rank >= 1; rank-- {
		rows = append(rows, fpsRow(s, rank))
	}
	return strings.Join(rows, "/")
}

func fpsRow(s *board.Snapshot, rank int) string {
	var bits []string
	for file := 1; file <= board.Size; {
		var i int
		for i = 0; file+i <= board.Size && cellAt(s, file+i, rank).Occupant == nil; i++ {
		}
		switch i {
		case 0:
			bits = append(bits, cellAt(s, file, rank).Occupant.Glyph)
			file++
		case 1:
			bits = append(bits, "x")
		default:
			bits = append(bits, fmt.Sprintf("x%d", i))
		}
		file += i
	}
	return strings.Join(bits, ",")
}

func cellAt(s *board.Snapshot, file, rank int) board.CellView {
	c, _ := board.FromFileRank(file, rank)
	return s.At(c)
}

func ParseFPS(fps string) ([]*board.Piece, error) {
	rows := strings.Split(strings.TrimSpace(fps), "/")
	if len(rows) != board.Size {
		return nil, fmt.Errorf("bad FPS: %d ranks", len(rows))
	}
	var out []*board.Piece
	for i, r := range rows {
		rank := board.Size - i
		ps, err := parseRow(r, rank)
		if err != nil {
			return nil, fmt.Errorf("rank %d: %w", rank, err)
		}
		out = append(out, ps...)
	}
	return out, nil
}

func parseRow(row string, rank int) ([]*board.Piece, error) {
	if row == "" {
		return nil, errors.New("empty rank")
	}
	var out []*board.Piece
	file := 1
	for _, bit := range strings.Split(row, ",") {
		if bit == "" {
			return nil, errors.New("empty cell")
		}
		if bit[0] == 'x' {
			count := 1
			if len(bit) > 1 {
				n, err := strconv.Atoi(bit[1:])
				if err != nil || n < 1 {
					return nil, fmt.Errorf("bad run: %q", bit)
				}
				count = n
			}
			file += count
			if file > board.Size+1 {
				return nil, fmt.Errorf("rank too long at %q", bit)
			}
			continue
		}
		kind, err := kindForGlyph(bit)
		if err != nil {
			return nil, err
		}
		at, ok := board.FromFileRank(file, rank)
		if !ok {
			return nil, fmt.Errorf("rank too long at %q", bit)
		}
		out = append(out, board.NewPiece(kind, at))
		file++
	}
	if file != board.Size+1 {
		return nil, fmt.Errorf("rank has %d cells", file-1)
	}
	return out, nil
}

func kindForGlyph(g string) (board.Kind, error) {
	for _, k := range board.Kinds() {
		if k.Glyph() == g {
			return k, nil
		}
	}
	return board.NoKind, fmt.Errorf("unknown piece: %q", g)
}
