// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kvstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Dialects supported by SQLStore
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// SQLStore keeps entries in the kv_entry table (see package db)
type SQLStore struct {
	db      *sql.DB
	dialect string
}

func NewSQLStore(db *sql.DB, dialect string) *SQLStore {
	return &SQLStore{db: db, dialect: dialect}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM kv_entry WHERE key = $1
	`, key).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !value.Valid {
		return nil, false, nil
	}
	return []byte(value.String), true, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, upsertEntry, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, key, err)
	}
	return nil
}

// Update runs fn inside a transaction. On Postgres the row is created if
// missing and locked with FOR UPDATE so concurrent ballots for the same week
// serialize; SQLite is already serialized by its single connection.
func (s *SQLStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	selectQuery := `SELECT value FROM kv_entry WHERE key = $1`
	if s.dialect == DialectPostgres {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO kv_entry (key, value, updated_at)
			VALUES ($1, NULL, $2)
			ON CONFLICT (key) DO NOTHING
		`, key, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to reserve %s: %w", key, err)
		}
		selectQuery += ` FOR UPDATE`
	}

	var value sql.NullString
	err = tx.QueryRowContext(ctx, selectQuery, key).Scan(&value)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	var current []byte
	if value.Valid {
		current = []byte(value.String)
	}

	next, err := fn(current, value.Valid)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, upsertEntry, key, string(next), time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, key, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit %s: %w", ErrWrite, key, err)
	}

	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

const upsertEntry = `
	INSERT INTO kv_entry (key, value, updated_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`
