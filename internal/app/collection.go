package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotel_booking/internal/domain"
)

// collection is the load-all/save-all pair every store is built on: one JSON
// array document per entity, read whole and rewritten whole.
type collection[T any] struct {
	docs domain.DocumentStore
	name string
}

// loadAll never fails: a missing, unreadable or malformed document is an
// empty collection.
func (c collection[T]) loadAll(ctx context.Context) []T {
	data, err := c.docs.Load(ctx, c.name)
	if err != nil {
		if !errors.Is(err, domain.ErrDocumentMissing) {
			log.Warn().Err(err).Str("document", c.name).Msg("degraded load: read failed")
		}
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		log.Warn().Err(err).Str("document", c.name).Msg("degraded load: malformed JSON")
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

func (c collection[T]) saveAll(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.docs.Save(ctx, c.name, buf.Bytes()); err != nil {
		return fmt.Errorf("save %s: %w", c.name, err)
	}
	return nil
}
