package storage

import "time"

// StateRecord is one opaque serialized blob stored under a fixed key.
type StateRecord struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// SyncEventRecord is one pull, push or import attempt.
type SyncEventRecord struct {
	ID        string // UUID
	Operation string // "pull", "push" or "import"
	Outcome   string // terminal sync state, e.g. "done", "conflict", "failed"
	Version   string // remote version token involved, if any
	Message   string // status message shown to the user
	CreatedAt time.Time
}
