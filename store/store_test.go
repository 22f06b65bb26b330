package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/fieldboard/board"
	"github.com/nelhage/fieldboard/boardtest"
)

var clock = time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)

func fixedNow() time.Time { return clock }

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := Open(filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	sq.Now = fixedNow
	t.Cleanup(func() { sq.Close() })
	return map[string]Store{
		"dir": &DirStore{Dir: filepath.Join(t.TempDir(), "saved"), Now: fixedNow},
		"sql": sq,
	}
}

func TestEncoding(t *testing.T) {
	e2 := board.E2
	in := []board.Record{
		{Type: "king", Start: board.E1, Current: &e2},
		{Type: "king", Start: board.A8},
	}
	data, err := encode(in)
	require.NoError(t, err)
	out, err := decode(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = decode([]byte("not base64!"))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	for kind, st := range openStores(t) {
		t.Run(kind, func(t *testing.T) {
			names, err := st.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, names)

			b := boardtest.Board("a1 e4 h8")
			b.Move(board.E4, board.E5)
			nm, err := SaveBoard(ctx, st, b)
			require.NoError(t, err)
			assert.Equal(t, "chessboard-2024-03-09_14-05-07.chessboard", nm)

			again, err := SaveBoard(ctx, st, boardtest.Board("c3"))
			require.NoError(t, err)
			assert.Equal(t, "chessboard-2024-03-09_14-05-07-1.chessboard", again)

			names, err = st.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{again, nm}, names)

			loaded, err := LoadBoard(ctx, st, nm)
			require.NoError(t, err)
			assert.Equal(t, "a1 e5 h8", boardtest.Occupied(loaded))
			assert.Equal(t, board.E4, loaded.At(board.E5).Start())

			_, err = st.Load(ctx, "chessboard-1999-01-01_00-00-00.chessboard")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestDirStoreIgnoresForeignFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "chessboard-x.chessboard"), 0755))
	st := &DirStore{Dir: dir, Now: fixedNow}
	names, err := st.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = st.Load(ctx, "../notes.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	st := &DirStore{Dir: dir, Now: fixedNow}

	good, err := SaveBoard(ctx, st, boardtest.Board("a1 b2"))
	require.NoError(t, err)
	dup, err := st.Save(ctx, []board.Record{
		{Type: "king", Start: board.D4},
		{Type: "king", Start: board.D4},
	})
	require.NoError(t, err)
	bogus := "chessboard-2024-03-09_14-05-07-9.chessboard"
	require.NoError(t, os.WriteFile(filepath.Join(dir, bogus), []byte("garbage"), 0644))

	results, err := Verify(ctx, st, 4)
	require.NoError(t, err)
	require.Len(t, results, 3)

	byName := make(map[string]Result)
	for _, r := range results {
		byName[r.Name] = r
	}
	assert.NoError(t, byName[good].Err)
	assert.Equal(t, 2, byName[good].Pieces)
	assert.ErrorIs(t, byName[dup].Err, board.ErrDuplicateOccupant)
	assert.Error(t, byName[bogus].Err)
}
