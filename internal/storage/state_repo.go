package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// StateRepo stores opaque blobs by key.
type StateRepo struct {
	db *sql.DB
}

// NewStateRepo creates a new StateRepo.
func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Get returns the record stored under key. Returns ErrNotFound if absent.
func (r *StateRepo) Get(ctx context.Context, key string) (*StateRecord, error) {
	var rec StateRecord
	var updatedAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT key, value, updated_at FROM state_records WHERE key = ?",
		key,
	).Scan(&rec.Key, &rec.Value, &updatedAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query state record: %w", err)
	}

	rec.UpdatedAt, err = parseTimestamp(updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}

	return &rec, nil
}

// Put replaces the record stored under key in a single statement, so a
// reader sees either the previous value or the new one.
func (r *StateRepo) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO state_records (key, value, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (key) DO UPDATE SET
		 value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write state record: %w", err)
	}
	return nil
}

// parseTimestamp reads a DATETIME column; the driver may hand back either
// SQLite's text form or RFC 3339.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
