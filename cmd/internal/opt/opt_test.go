package opt

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/fieldboard/cli"
	"github.com/nelhage/fieldboard/config"
	"github.com/nelhage/fieldboard/store"
)

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fieldboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  backend: sqlite\nglyphs: ascii\n"), 0644))

	var o Store
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-config", path,
		"-db", filepath.Join(dir, "boards.db"),
		"-unicode",
	}))
	c, err := o.Build()
	require.NoError(t, err)
	assert.Equal(t, config.BackendSQLite, c.Store.Backend)
	assert.Equal(t, filepath.Join(dir, "boards.db"), c.Store.Database)
	assert.Equal(t, &cli.UnicodeGlyphs, Glyphs(c))

	st, closer, err := Open(c)
	require.NoError(t, err)
	defer closer()
	_, ok := st.(*store.SQLStore)
	assert.True(t, ok)
}

func TestBuildRejectsBackend(t *testing.T) {
	o := Store{Config: filepath.Join(t.TempDir(), "none.yaml"), Backend: "s3"}
	_, err := o.Build()
	assert.Error(t, err)
}

func TestOpenDir(t *testing.T) {
	c := config.Default()
	c.Store.Dir = t.TempDir()
	st, closer, err := Open(c)
	require.NoError(t, err)
	closer()
	ds, ok := st.(*store.DirStore)
	require.True(t, ok)
	assert.Equal(t, c.Store.Dir, ds.Dir)
	assert.Equal(t, &cli.DefaultGlyphs, Glyphs(c))
}
