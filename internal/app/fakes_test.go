package app_test

import (
	"context"
	"errors"

	"hotel_booking/internal/domain"
)

// ---- fakes ----

type memDocs struct {
	data    map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newMemDocs() *memDocs { return &memDocs{data: map[string][]byte{}} }

func (m *memDocs) Load(ctx context.Context, name string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	b, ok := m.data[name]
	if !ok {
		return nil, domain.ErrDocumentMissing
	}
	return b, nil
}

func (m *memDocs) Save(ctx context.Context, name string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.data[name] = append([]byte(nil), data...)
	return nil
}

var errDisk = errors.New("disk unplugged")

func ptr[T any](v T) *T { return &v }
