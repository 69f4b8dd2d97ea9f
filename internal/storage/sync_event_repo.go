package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// SyncEventRepo records sync attempts.
type SyncEventRepo struct {
	db *sql.DB
}

// NewSyncEventRepo creates a new SyncEventRepo.
func NewSyncEventRepo(db *sql.DB) *SyncEventRepo {
	return &SyncEventRepo{db: db}
}

// Insert appends an event. A UUID is generated when event.ID is empty.
func (r *SyncEventRepo) Insert(ctx context.Context, event *SyncEventRecord) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sync_events (id, operation, outcome, version, message) VALUES (?, ?, ?, ?, ?)",
		event.ID, event.Operation, event.Outcome, event.Version, event.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sync event: %w", err)
	}
	return nil
}

// ListRecent returns up to limit events, newest first.
func (r *SyncEventRepo) ListRecent(ctx context.Context, limit int) ([]SyncEventRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, operation, outcome, version, message, created_at FROM sync_events ORDER BY created_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync events: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	events := []SyncEventRecord{}
	for rows.Next() {
		var e SyncEventRecord
		var createdAtStr string
		if err := rows.Scan(&e.ID, &e.Operation, &e.Outcome, &e.Version, &e.Message, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan sync event: %w", err)
		}
		e.CreatedAt, err = parseTimestamp(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return events, nil
}
