// Package store persists sets of pieces so a board can be rebuilt
// later.
package store

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/nelhage/fieldboard/board"
)

const (
	Prefix     = "chessboard-"
	Extension  = ".chessboard"
	TimeLayout = "2006-01-02_15-04-05"
)

var ErrNotFound = errors.New("no such save")

type Store interface {
	List(ctx context.Context) ([]string, error)
	Save(ctx context.Context, records []board.Record) (string, error)
	Load(ctx context.Context, name string) ([]board.Record, error)
}

// SaveBoard saves every piece currently on b.
func SaveBoard(ctx context.Context, st Store, b *board.Board) (string, error) {
	return st.Save(ctx, board.Records(b.Pieces()))
}

// LoadBoard loads a save and places its pieces on a new board.
func LoadBoard(ctx context.Context, st Store, name string) (*board.Board, error) {
	rs, err := st.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	ps, err := board.FromRecords(rs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	b, err := board.FromPieces(ps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

// name returns the save name for t, or its n'th alternative when
// several saves land in the same second.
func name(t time.Time, n int) string {
	stamp := t.Format(TimeLayout)
	if n == 0 {
		return Prefix + stamp + Extension
	}
	return fmt.Sprintf("%s%s-%d%s", Prefix, stamp, n, Extension)
}

// encode writes records as base64(gzip(json)).
func encode(records []board.Record) ([]byte, error) {
	if records == nil {
		records = []board.Record{}
	}
	var buf bytes.Buffer
	b64 := base64.NewEncoder(base64.StdEncoding, &buf)
	gz := gzip.NewWriter(b64)
	if err := json.NewEncoder(gz).Encode(records); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	if err := b64.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte) ([]board.Record, error) {
	gz, err := gzip.NewReader(base64.NewDecoder(base64.StdEncoding, bytes.NewReader(bytes.TrimSpace(data))))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	defer gz.Close()
	body, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	var records []board.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return records, nil
}
