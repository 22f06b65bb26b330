package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nelhage/fieldboard/board"
)

// DirStore keeps one file per save in Dir.
type DirStore struct {
	Dir string
	Now func() time.Time
}

func NewDirStore(dir string) *DirStore {
	return &DirStore{Dir: dir, Now: time.Now}
}

func (d *DirStore) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

func (d *DirStore) List(ctx context.Context) ([]string, error) {
	ents, err := os.ReadDir(d.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range ents {
		if e.IsDir() || !valid(e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out, nil
}

func (d *DirStore) Save(ctx context.Context, records []board.Record) (string, error) {
	data, err := encode(records)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return "", err
	}
	t := d.now()
	for n := 0; ; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		nm := name(t, n)
		fh, err := os.OpenFile(filepath.Join(d.Dir, nm), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		_, err = fh.Write(data)
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return "", err
		}
		return nm, nil
	}
}

func (d *DirStore) Load(ctx context.Context, nm string) ([]board.Record, error) {
	if !valid(nm) || nm != filepath.Base(nm) {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(d.Dir, nm))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func valid(nm string) bool {
	return strings.HasPrefix(nm, Prefix) && strings.HasSuffix(nm, Extension)
}
