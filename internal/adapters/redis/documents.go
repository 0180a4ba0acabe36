package redisad

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

// Documents keeps each document as one string key, prefix+name, with no TTL.
type Documents struct {
	c      *redis.Client
	prefix string
}

func New(addr, pass string, db int, prefix string) *Documents {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}), prefix)
}

func NewWithClient(c *redis.Client, prefix string) *Documents {
	return &Documents{c: c, prefix: prefix}
}

func (r *Documents) key(name string) string { return r.prefix + name }

func (r *Documents) Load(ctx context.Context, name string) ([]byte, error) {
	v, err := r.c.Get(ctx, r.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		err = domain.ErrDocumentMissing
	}
	observability.ObserveDocument("redis", "load", err)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *Documents) Save(ctx context.Context, name string, data []byte) error {
	err := r.c.Set(ctx, r.key(name), data, 0).Err()
	observability.ObserveDocument("redis", "save", err)
	return err
}

func (r *Documents) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

func (r *Documents) Close() error { return r.c.Close() }
