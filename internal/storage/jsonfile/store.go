// Package jsonfile keeps each document as a plain file on local disk.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

// Store maps document names to files. Relative names resolve under dir;
// absolute names are used as-is. Writes replace the whole file and are not
// safe against concurrent writers.
type Store struct {
	dir string
}

func New(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

func (s *Store) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	b, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		err = domain.ErrDocumentMissing
	}
	observability.ObserveDocument("file", "load", err)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	err := s.write(s.Path(name), data)
	observability.ObserveDocument("file", "save", err)
	return err
}

func (s *Store) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dirs: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
