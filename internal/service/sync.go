package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"studynotes/internal/notes"
	"studynotes/internal/remote"
	"studynotes/internal/storage"
)

// SyncState is a step of a pull or push.
type SyncState string

const (
	StateIdle     SyncState = "idle"
	StateFetching SyncState = "fetching"
	StateApplying SyncState = "applying"
	StateChecking SyncState = "checking"
	StateWriting  SyncState = "writing"
	StateDone     SyncState = "done"
	StateConflict SyncState = "conflict"
	StateFailed   SyncState = "failed"
)

// Terminal reports whether the state ends a sync.
func (s SyncState) Terminal() bool {
	return s == StateDone || s == StateConflict || s == StateFailed
}

// SyncStatus describes the latest sync step.
type SyncStatus struct {
	Operation string
	State     SyncState
	Message   string
	Version   string
	At        time.Time
}

// Status is the sync surface: the latest status, the remote address without
// its credential, and recent attempts.
type Status struct {
	Sync     SyncStatus
	Remote   notes.RemoteConfig
	HasToken bool
	Events   []storage.SyncEventRecord
}

const recentEvents = 10

func (s *notesService) Pull(ctx context.Context) (SyncStatus, error) {
	if !s.syncing.CompareAndSwap(false, true) {
		return s.currentStatus(), ErrSyncInProgress
	}
	defer s.syncing.Store(false)

	logger := s.getLogger(ctx)

	cfg := s.Collection(ctx).Remote
	if !cfg.Configured() {
		return s.finish(ctx, "pull", StateFailed, "", ErrRemoteNotConfigured)
	}
	addr := addressOf(cfg)

	s.setStatus("pull", StateFetching, "Loading…", "")
	obj, err := s.client.Fetch(ctx, addr, cfg.Token)
	if err != nil {
		return s.finish(ctx, "pull", StateFailed, "", WrapError(err, "failed to fetch remote notes"))
	}
	if obj == nil {
		logger.InfoContext(ctx, "nothing to pull", "address", addr.String())
		return s.finishMessage(ctx, "pull", StateIdle, "", "Nothing to pull: no file found at that path.")
	}

	s.setStatus("pull", StateApplying, "Applying remote notes…", obj.Version)
	pulled, err := notes.Decode(obj.Content)
	if err != nil {
		return s.finish(ctx, "pull", StateFailed, obj.Version, WrapError(err, "remote notes are not readable"))
	}
	pulled.Normalize()

	err = s.mutate(ctx, "pull", func(c *notes.Collection) error {
		local := c.Remote
		*c = *pulled
		c.Remote = local
		// The version belongs to addr; a remote reconfigured mid-fetch keeps its own.
		if addressOf(local) == addr {
			c.Remote.SHA = obj.Version
		}
		return nil
	})
	if err != nil {
		return s.finish(ctx, "pull", StateFailed, obj.Version, err)
	}

	logger.InfoContext(ctx, "pulled remote notes", "address", addr.String(), "version", obj.Version, "notes", len(pulled.Notes))
	return s.finishMessage(ctx, "pull", StateDone, obj.Version, "Loaded from remote.")
}

func (s *notesService) Push(ctx context.Context, force bool) (SyncStatus, error) {
	if !s.syncing.CompareAndSwap(false, true) {
		return s.currentStatus(), ErrSyncInProgress
	}
	defer s.syncing.Store(false)

	logger := s.getLogger(ctx)

	snapshot := s.Collection(ctx)
	cfg := snapshot.Remote
	if !cfg.Configured() {
		return s.finish(ctx, "push", StateFailed, "", ErrRemoteNotConfigured)
	}
	addr := addressOf(cfg)

	s.setStatus("push", StateChecking, "Checking remote…", cfg.SHA)
	obj, err := s.client.Fetch(ctx, addr, cfg.Token)
	if err != nil {
		return s.finish(ctx, "push", StateFailed, "", WrapError(err, "failed to check remote version"))
	}
	var fetched string
	if obj != nil {
		fetched = obj.Version
	}

	expected := cfg.SHA
	switch {
	case force || expected == "":
		expected = fetched
	case expected != fetched:
		logger.WarnContext(ctx, "remote changed since last sync", "remembered", expected, "remote", fetched)
		err := fmt.Errorf("remembered version %q, remote has %q: %w", expected, fetched, remote.ErrVersionConflict)
		return s.finish(ctx, "push", StateConflict, fetched, err)
	}

	payload := snapshot.Clone()
	payload.Remote.Token = ""
	payload.Remote.SHA = ""
	data, err := notes.Encode(payload)
	if err != nil {
		return s.finish(ctx, "push", StateFailed, "", WrapError(err, "failed to encode notes"))
	}

	s.setStatus("push", StateWriting, "Saving…", expected)
	message := fmt.Sprintf("Update %s (%s)", path.Base(addr.Path), s.now().UTC().Format(time.RFC3339))
	version, err := s.client.Put(ctx, addr, cfg.Token, data, message, expected)
	if err != nil {
		state := StateFailed
		if errors.Is(err, remote.ErrVersionConflict) {
			state = StateConflict
		}
		return s.finish(ctx, "push", state, expected, WrapError(err, "failed to write remote notes"))
	}

	if err := s.rememberVersion(ctx, addr, version); err != nil {
		return s.finish(ctx, "push", StateFailed, version, WrapError(err, "saved to remote but not locally"))
	}

	logger.InfoContext(ctx, "pushed notes", "address", addr.String(), "version", version, "bytes", len(data))
	return s.finishMessage(ctx, "push", StateDone, version, "Saved to remote.")
}

// rememberVersion records a version written to addr. The in-memory copy is
// updated even when persisting fails, since the remote write already happened.
func (s *notesService) rememberVersion(ctx context.Context, addr remote.Address, version string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if addressOf(s.current.Remote) != addr {
		return nil
	}
	next := s.current.Clone()
	next.Remote.SHA = version
	s.current = next
	if err := s.store.Save(ctx, next); err != nil {
		return err
	}
	return nil
}

func (s *notesService) Import(ctx context.Context, data []byte) error {
	imported, err := notes.Decode(data)
	if err != nil {
		s.recordEvent(ctx, "import", StateFailed, "", StatusMessage(err))
		return err
	}
	imported.Normalize()

	err = s.mutate(ctx, "import", func(c *notes.Collection) error {
		*c = *imported
		return nil
	})
	if err != nil {
		s.recordEvent(ctx, "import", StateFailed, "", StatusMessage(err))
		return err
	}
	s.recordEvent(ctx, "import", StateDone, "", fmt.Sprintf("Imported %d notes.", len(imported.Notes)))
	return nil
}

func (s *notesService) Export(ctx context.Context) ([]byte, error) {
	return notes.Encode(s.Collection(ctx))
}

func (s *notesService) Status(ctx context.Context) (Status, error) {
	c := s.Collection(ctx)
	st := Status{
		Sync:     s.currentStatus(),
		Remote:   c.Remote,
		HasToken: c.Remote.Token != "",
	}
	st.Remote.Token = ""

	if s.events != nil {
		events, err := s.events.ListRecent(ctx, recentEvents)
		if err != nil {
			return st, WrapError(err, "failed to list sync events")
		}
		st.Events = events
	}
	return st, nil
}

func (s *notesService) currentStatus() SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *notesService) setStatus(op string, state SyncState, message, version string) SyncStatus {
	st := SyncStatus{Operation: op, State: state, Message: message, Version: version, At: s.now()}
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
	return st
}

// finish ends a sync with err rendered as the status message.
func (s *notesService) finish(ctx context.Context, op string, state SyncState, version string, err error) (SyncStatus, error) {
	st, _ := s.finishMessage(ctx, op, state, version, StatusMessage(err))
	s.getLogger(ctx).WarnContext(ctx, "sync did not complete", "operation", op, "state", state, "error", err)
	return st, err
}

func (s *notesService) finishMessage(ctx context.Context, op string, state SyncState, version, message string) (SyncStatus, error) {
	st := s.setStatus(op, state, message, version)
	s.recordEvent(ctx, op, state, version, message)
	return st, nil
}

func (s *notesService) recordEvent(ctx context.Context, op string, state SyncState, version, message string) {
	if s.events == nil {
		return
	}
	event := &storage.SyncEventRecord{Operation: op, Outcome: string(state), Version: version, Message: message}
	if err := s.events.Insert(ctx, event); err != nil {
		s.getLogger(ctx).WarnContext(ctx, "failed to record sync event", "operation", op, "error", err)
	}
}
