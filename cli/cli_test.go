package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/fieldboard/board"
	"github.com/nelhage/fieldboard/boardtest"
)

func TestRenderBoard(t *testing.T) {
	s := boardtest.Board("a1 e4").Snapshot()
	var buf bytes.Buffer
	RenderBoard(nil, &buf, &s)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, board.Size+1)
	assert.True(t, strings.HasPrefix(lines[0], "8."))
	assert.Equal(t, 0, strings.Count(lines[0], "[K]"))
	assert.True(t, strings.HasPrefix(lines[4], "4."))
	assert.Equal(t, 1, strings.Count(lines[4], "[K]"))
	assert.Less(t, strings.Index(lines[7], "[K]"), strings.Index(lines[7], "[ ]"))
	assert.Contains(t, lines[8], "h.")
	assert.Equal(t, 2, strings.Count(buf.String(), "[K]"))

	buf.Reset()
	RenderBoard(&UnicodeGlyphs, &buf, &s)
	assert.Equal(t, 2, strings.Count(buf.String(), "[♔]"))
	assert.Equal(t, 62, strings.Count(buf.String(), "[·]"))
}

func TestRenderActivity(t *testing.T) {
	b := boardtest.Board("a1")
	b.Refresh()
	s := b.Snapshot()
	var buf bytes.Buffer
	RenderActivity(&buf, &s)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, board.Size+1)
	assert.Equal(t, []string{"2.", "1", "1", "0", "0", "0", "0", "0", "0"}, strings.Fields(lines[6]))
	assert.Equal(t, []string{"1.", "1*", "1", "0", "0", "0", "0", "0", "0"}, strings.Fields(lines[7]))
	assert.Equal(t, []string{"8.", "0", "0", "0", "0", "0", "0", "0", "0"}, strings.Fields(lines[0]))
}

func TestRenderPieces(t *testing.T) {
	ps := boardtest.Kings("e1 e2")
	b, err := board.FromPieces(ps)
	require.NoError(t, err)
	b.Move(board.E1, board.E2)

	var buf bytes.Buffer
	RenderPieces(&buf, ps)
	out := buf.String()
	assert.Contains(t, out, "King")
	assert.Contains(t, out, "off board")
	assert.Contains(t, out, "from e1")
	assert.Contains(t, out, "pieces: 2")
}

func TestParseGlyphs(t *testing.T) {
	g, err := ParseGlyphs("unicode")
	require.NoError(t, err)
	assert.Equal(t, "♔", g.King)
	g, err = ParseGlyphs("")
	require.NoError(t, err)
	assert.Equal(t, "K", g.King)
	_, err = ParseGlyphs("emoji")
	assert.Error(t, err)
}
