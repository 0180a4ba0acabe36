// Package storage picks the document backend the stores run on.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	redisad "hotel_booking/internal/adapters/redis"
	"hotel_booking/internal/domain"
	"hotel_booking/internal/shared"
	"hotel_booking/internal/storage/jsonfile"
	mysqlrepo "hotel_booking/internal/storage/mysql"
	"hotel_booking/internal/storage/sqlite"
)

const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMySQL  = "mysql"
	BackendSQLite = "sqlite"
)

// Open returns the configured backend and a func releasing its resources.
func Open(ctx context.Context, cfg shared.Config) (domain.DocumentStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case "", BackendFile:
		return jsonfile.New(cfg.DataDir), noop, nil

	case BackendRedis:
		docs := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisPrefix)
		if err := docs.Ping(ctx); err != nil {
			_ = docs.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return docs, docs.Close, nil

	case BackendMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("sql.Open failed: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("db.Ping failed: %w", err)
		}
		repo := mysqlrepo.New(db)
		if err := repo.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, db.Close, nil

	case BackendSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
