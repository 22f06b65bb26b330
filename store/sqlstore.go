package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLStore assumes sqlite

	"github.com/nelhage/fieldboard/board"
)

// SQLStore keeps saves in a sqlite database.
type SQLStore struct {
	db  *sqlx.DB
	Now func() time.Time
}

type saveRow struct {
	Name   string    `db:"name"`
	Saved  time.Time `db:"saved"`
	Pieces int       `db:"pieces"`
	Body   []byte    `db:"body"`
}

func Open(dsn string) (*SQLStore, error) {
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(createSavesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create saves table: %v", err)
	}
	return &SQLStore{db: db, Now: time.Now}, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) List(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.db.SelectContext(ctx, &names, selectNames); err != nil {
		return nil, err
	}
	return names, nil
}

func (s *SQLStore) Save(ctx context.Context, records []board.Record) (string, error) {
	data, err := encode(records)
	if err != nil {
		return "", err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	t := now()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()
	row := saveRow{Saved: t.UTC(), Pieces: len(records), Body: data}
	for n := 0; ; n++ {
		row.Name = name(t, n)
		var count int
		if err := tx.GetContext(ctx, &count, countName, row.Name); err != nil {
			return "", err
		}
		if count == 0 {
			break
		}
	}
	if _, err := tx.NamedExecContext(ctx, insertSave, &row); err != nil {
		return "", fmt.Errorf("insert %s: %w", row.Name, err)
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return row.Name, nil
}

func (s *SQLStore) Load(ctx context.Context, nm string) ([]board.Record, error) {
	var body []byte
	err := s.db.GetContext(ctx, &body, selectBody, nm)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(body)
}
