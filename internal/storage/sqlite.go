package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gasupport/internal/dbx"
)

// SQLiteKV implements KV over a local SQLite database with a single
// kv(key, value) table.
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLiteKV returns a SQLiteKV bound to the given database handle.
// The schema is expected to be migrated already (see Open).
func NewSQLiteKV(db *sql.DB) *SQLiteKV {
	return &SQLiteKV{db: db}
}

func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	return get(ctx, s.db, key)
}

func (s *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	return set(ctx, s.db, key, value)
}

func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

// Update wraps the read-modify-write cycle in a transaction so a concurrent
// or failed rewrite can never persist a half-modified collection.
func (s *SQLiteKV) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		current, err := get(ctx, tx, key)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		return set(ctx, tx, key, next)
	})
}

func get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}
