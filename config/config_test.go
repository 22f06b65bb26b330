package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
store:
  backend: sqlite
  database: /tmp/boards.db
glyphs: unicode
`))
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, c.Store.Backend)
	assert.Equal(t, "/tmp/boards.db", c.Store.Database)
	assert.Equal(t, "saved-chessboards", c.Store.Dir)
	assert.Equal(t, "unicode", c.Glyphs)
	assert.Equal(t, ":55430", c.Listen)
}

func TestParseErrors(t *testing.T) {
	for _, bad := range []string{
		"store: [1, 2]",
		"store:\n  backend: redis\n",
		"store:\n  dir: ''\n",
		"glyphs: emoji\n",
	} {
		_, err := Parse([]byte(bad))
		assert.Error(t, err, bad)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	want := Default()
	want.Listen = "localhost:9000"
	data, err := want.Marshal()
	require.NoError(t, err)
	path := filepath.Join(dir, "fieldboard.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
