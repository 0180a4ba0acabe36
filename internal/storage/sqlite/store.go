// Package sqlite keeps documents in a single-table SQLite database. It is the
// zero-infrastructure alternative to the MySQL backend.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

type Store struct {
	db   *sql.DB
	path string
}

// Open creates (if needed) and opens the database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "hotel.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS documents (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM documents WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		err = domain.ErrDocumentMissing
	}
	observability.ObserveDocument("sqlite", "load", err)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents(name, payload) VALUES(?, ?) ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		name, data)
	if err != nil {
		err = fmt.Errorf("upsert %s: %w", name, err)
	}
	observability.ObserveDocument("sqlite", "save", err)
	return err
}

func (s *Store) Path() string { return s.path }

func (s *Store) Close() error { return s.db.Close() }
