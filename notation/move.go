package notation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nelhage/fieldboard/board"
)

var moveRE = regexp.MustCompile(
	// from [separator] to
	`^([a-hA-H][1-8])\s*[-x:\s]?\s*([a-hA-H][1-8])$`,
)

var ErrBadMove = errors.New("illegal move syntax")

// ParseMove accepts "e1-e2", "e1e2", "e1xe2" and "e1 e2".
func ParseMove(move string) (board.Move, error) {
	groups := moveRE.FindStringSubmatch(strings.TrimSpace(move))
	if groups == nil {
		return board.Move{}, ErrBadMove
	}
	from, err := board.ParseCoord(groups[1])
	if err != nil {
		return board.Move{}, err
	}
	to, err := board.ParseCoord(groups[2])
	if err != nil {
		return board.Move{}, err
	}
	return board.Move{From: from, To: to}, nil
}

func FormatMove(m board.Move) string {
	return m.String()
}

func ParseMoves(s string) ([]board.Move, error) {
	var ms []board.Move
	for _, w := range strings.Fields(s) {
		m, err := ParseMove(w)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}

func FormatMoves(ms []board.Move) string {
	var bits []string
	for _, m := range ms {
		bits = append(bits, FormatMove(m))
	}
	return strings.Join(bits, " ")
}
