package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

// Repo stores every document as one row of the documents table.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// Migrate creates the documents table when it does not exist yet.
func (r *Repo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createDocumentsSQL); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

func (r *Repo) Load(ctx context.Context, name string) ([]byte, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, getDocumentSQL, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		err = domain.ErrDocumentMissing
	}
	observability.ObserveDocument("mysql", "load", err)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (r *Repo) Save(ctx context.Context, name string, data []byte) error {
	_, err := r.db.ExecContext(ctx, upsertDocumentSQL, name, string(data))
	observability.ObserveDocument("mysql", "save", err)
	return err
}
