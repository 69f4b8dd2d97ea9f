package storage

import (
	"context"
	"errors"
	"fmt"

	"studynotes/internal/notes"
)

// StateKey is the fixed key the collection is stored under.
const StateKey = "notes-state-v1"

// CollectionStore persists the whole collection as one serialized record.
type CollectionStore struct {
	repo *StateRepo
	key  string
}

// NewCollectionStore creates a CollectionStore writing under StateKey.
func NewCollectionStore(repo *StateRepo) *CollectionStore {
	return &CollectionStore{repo: repo, key: StateKey}
}

// Load reads the stored collection. It returns nil and no error when nothing
// has been stored yet. A record without "notes" and "sections" yields an error
// matching notes.ErrMalformedPayload so the caller can fall back to defaults.
func (s *CollectionStore) Load(ctx context.Context) (*notes.Collection, error) {
	rec, err := s.repo.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c, err := notes.Decode(rec.Value)
	if err != nil {
		return nil, fmt.Errorf("stored collection %q: %w", s.key, err)
	}
	return c, nil
}

// Save serializes and stores the collection, replacing the previous record.
func (s *CollectionStore) Save(ctx context.Context, c *notes.Collection) error {
	data, err := notes.Encode(c)
	if err != nil {
		return err
	}
	return s.repo.Put(ctx, s.key, data)
}

// Ping checks that the underlying database is reachable.
func (s *CollectionStore) Ping(ctx context.Context) error {
	return s.repo.db.PingContext(ctx)
}
