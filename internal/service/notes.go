package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_local_store.go -package=mocks studynotes/internal/service LocalStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_remote_client.go -package=mocks studynotes/internal/service RemoteClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_sync_event_store.go -package=mocks studynotes/internal/service SyncEventStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_notes_service.go -package=mocks -mock_names=NotesService=MockNotesService studynotes/internal/service NotesService

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"studynotes/internal/contextutil"
	"studynotes/internal/markup"
	"studynotes/internal/notes"
	"studynotes/internal/remote"
	"studynotes/internal/storage"
)

// LocalStore persists the whole collection.
// This interface is defined from the service layer's perspective (consumer-first).
type LocalStore interface {
	// Load returns the stored collection, or nil when nothing is stored.
	Load(ctx context.Context) (*notes.Collection, error)
	// Save replaces the stored collection.
	Save(ctx context.Context, c *notes.Collection) error
}

// RemoteClient reads and conditionally writes the remote blob.
type RemoteClient interface {
	// Fetch returns nil and no error when nothing exists at addr.
	Fetch(ctx context.Context, addr remote.Address, credential string) (*remote.Object, error)
	// Put writes content and returns the new version.
	Put(ctx context.Context, addr remote.Address, credential string, content []byte, message, expectedVersion string) (string, error)
}

// SyncEventStore records sync attempts.
type SyncEventStore interface {
	Insert(ctx context.Context, event *storage.SyncEventRecord) error
	ListRecent(ctx context.Context, limit int) ([]storage.SyncEventRecord, error)
}

// MarkupRenderer converts markdown note bodies to HTML.
type MarkupRenderer interface {
	ToHTML(src []byte) (string, error)
	FirstHeading(src []byte) string
}

// ContentFormat names the format of submitted note content.
type ContentFormat string

const (
	FormatHTML     ContentFormat = "html"
	FormatMarkdown ContentFormat = "markdown"
)

// NewNote is a request to create a note.
type NewNote struct {
	Title     string
	SectionID string
	// Content is optional; without it the note starts with its title as a heading.
	Content string
	Format  ContentFormat
}

// NoteUpdate changes a note. Nil fields are left alone.
type NoteUpdate struct {
	Title   *string
	Content *string
	Format  ContentFormat
}

// NoteView is a note with its navigation context.
type NoteView struct {
	Note       notes.Note
	Breadcrumb string
	Selected   bool
}

// RemoteSettings sets the remote address. A nil Token keeps the stored one.
type RemoteSettings struct {
	Owner  string
	Repo   string
	Branch string
	Path   string
	Token  *string
}

// NotesService owns the collection. Every mutation is persisted before it
// becomes visible.
type NotesService interface {
	// Collection returns a copy of the current collection.
	Collection(ctx context.Context) *notes.Collection
	CreateSection(ctx context.Context, title string) (notes.Section, error)
	RenameSection(ctx context.Context, id, title string) error
	// DeleteSection removes a section without deleting its notes.
	DeleteSection(ctx context.Context, id string) error
	CreateNote(ctx context.Context, req NewNote) (notes.Note, error)
	GetNote(ctx context.Context, id string) (NoteView, error)
	// OpenNote selects a note and returns it. Unknown ids open home.
	OpenNote(ctx context.Context, id string) (NoteView, error)
	UpdateNote(ctx context.Context, id string, upd NoteUpdate) (notes.Note, error)
	DeleteNote(ctx context.Context, id string) error
	SetSiteTitle(ctx context.Context, title string) error
	ConfigureRemote(ctx context.Context, settings RemoteSettings) error
	// Pull replaces the local collection with the remote one.
	Pull(ctx context.Context) (SyncStatus, error)
	// Push replaces the remote collection with the local one.
	Push(ctx context.Context, force bool) (SyncStatus, error)
	// Import replaces the collection with an exported file.
	Import(ctx context.Context, data []byte) error
	// Export serializes the current collection.
	Export(ctx context.Context) ([]byte, error)
	Status(ctx context.Context) (Status, error)
}

// Option configures a notesService.
type Option func(*notesService)

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *notesService) {
		s.now = now
	}
}

// WithDefaultRemote seeds the remote address when the loaded collection has no owner.
func WithDefaultRemote(cfg notes.RemoteConfig) Option {
	return func(s *notesService) {
		s.defaultRemote = cfg
	}
}

// WithSyncEvents records every sync attempt in events.
func WithSyncEvents(events SyncEventStore) Option {
	return func(s *notesService) {
		s.events = events
	}
}

// WithRenderer overrides the markdown renderer.
func WithRenderer(r MarkupRenderer) Option {
	return func(s *notesService) {
		s.renderer = r
	}
}

// notesService implements NotesService.
type notesService struct {
	store         LocalStore
	client        RemoteClient
	events        SyncEventStore
	renderer      MarkupRenderer
	now           func() time.Time
	defaultRemote notes.RemoteConfig
	logger        *slog.Logger

	mu      sync.Mutex
	current *notes.Collection
	status  SyncStatus

	syncing atomic.Bool
}

// NewNotesService loads the stored collection, falling back to the bundled
// default when nothing is stored or the stored record is malformed.
func NewNotesService(ctx context.Context, store LocalStore, client RemoteClient, opts ...Option) (NotesService, error) {
	s := &notesService{
		store:    store,
		client:   client,
		renderer: markup.NewRenderer(),
		now:      time.Now,
		logger:   slog.Default(),
		status:   SyncStatus{State: StateIdle},
	}
	for _, opt := range opts {
		opt(s)
	}

	logger := s.getLogger(ctx)

	loaded, err := store.Load(ctx)
	switch {
	case errors.Is(err, notes.ErrMalformedPayload):
		logger.WarnContext(ctx, "stored notes are malformed, starting from defaults", "error", err)
		loaded = nil
	case err != nil:
		return nil, WrapError(err, "failed to load notes")
	}
	if loaded == nil {
		logger.InfoContext(ctx, "no stored notes, starting from defaults")
		loaded = notes.Default(s.now())
	}
	loaded.Normalize()

	if loaded.Remote.Owner == "" && s.defaultRemote.Owner != "" {
		loaded.Remote = notes.RemoteConfig{
			Owner:  s.defaultRemote.Owner,
			Repo:   s.defaultRemote.Repo,
			Branch: s.defaultRemote.Branch,
			Path:   s.defaultRemote.Path,
			Token:  s.defaultRemote.Token,
		}
		loaded.Normalize()
	}

	s.current = loaded
	logger.InfoContext(ctx, "notes loaded", "notes", len(loaded.Notes), "sections", len(loaded.Sections))
	return s, nil
}

func (s *notesService) getLogger(ctx context.Context) *slog.Logger {
	if l := contextutil.LoggerFromContext(ctx); l != slog.Default() {
		return l
	}
	return s.logger
}

// mutate applies fn to a copy of the collection, persists the copy and only
// then makes it current.
func (s *notesService) mutate(ctx context.Context, action string, fn func(c *notes.Collection) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutateLocked(ctx, action, fn)
}

func (s *notesService) mutateLocked(ctx context.Context, action string, fn func(c *notes.Collection) error) error {
	logger := s.getLogger(ctx)

	next := s.current.Clone()
	if err := fn(next); err != nil {
		logger.WarnContext(ctx, "notes action rejected", "action", action, "error", err)
		return err
	}
	if err := s.store.Save(ctx, next); err != nil {
		logger.ErrorContext(ctx, "failed to persist notes", "action", action, "error", err)
		return WrapError(err, "failed to save notes")
	}
	s.current = next
	logger.DebugContext(ctx, "notes action applied", "action", action)
	return nil
}

func (s *notesService) Collection(ctx context.Context) *notes.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

func (s *notesService) CreateSection(ctx context.Context, title string) (notes.Section, error) {
	var created notes.Section
	err := s.mutate(ctx, "create_section", func(c *notes.Collection) error {
		var err error
		created, err = c.CreateSection(title)
		return err
	})
	return created, err
}

func (s *notesService) RenameSection(ctx context.Context, id, title string) error {
	return s.mutate(ctx, "rename_section", func(c *notes.Collection) error {
		return c.RenameSection(id, title)
	})
}

func (s *notesService) DeleteSection(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete_section", func(c *notes.Collection) error {
		return c.DeleteSection(id)
	})
}

func (s *notesService) CreateNote(ctx context.Context, req NewNote) (notes.Note, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" && req.Format == FormatMarkdown {
		title = s.renderer.FirstHeading([]byte(req.Content))
	}

	var content string
	if req.Content != "" {
		var err error
		if content, err = s.renderContent(req.Content, req.Format); err != nil {
			return notes.Note{}, err
		}
	}

	var created notes.Note
	err := s.mutate(ctx, "create_note", func(c *notes.Collection) error {
		n, err := c.CreateNote(title, req.SectionID, s.now())
		if err != nil {
			return err
		}
		if content != "" {
			if err := c.SetNoteContent(n.ID, content, s.now()); err != nil {
				return err
			}
			n, _ = c.Note(n.ID)
		}
		created = n
		return nil
	})
	return created, err
}

func (s *notesService) GetNote(ctx context.Context, id string) (NoteView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.current.Note(id)
	if !ok {
		return NoteView{}, WrapError(notes.ErrNotFound, "note "+id)
	}
	return NoteView{Note: n, Breadcrumb: s.current.Breadcrumb(id), Selected: s.current.SelectedNoteID == id}, nil
}

func (s *notesService) OpenNote(ctx context.Context, id string) (NoteView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var view NoteView
	err := s.mutateLocked(ctx, "open_note", func(c *notes.Collection) error {
		selected := c.Select(id)
		n, _ := c.Note(selected)
		view = NoteView{Note: n, Breadcrumb: c.Breadcrumb(selected), Selected: true}
		return nil
	})
	return view, err
}

func (s *notesService) UpdateNote(ctx context.Context, id string, upd NoteUpdate) (notes.Note, error) {
	var content string
	if upd.Content != nil {
		var err error
		if content, err = s.renderContent(*upd.Content, upd.Format); err != nil {
			return notes.Note{}, err
		}
	}

	var updated notes.Note
	err := s.mutate(ctx, "update_note", func(c *notes.Collection) error {
		if upd.Title != nil {
			if err := c.RenameNote(id, *upd.Title); err != nil {
				return err
			}
		}
		if upd.Content != nil {
			if err := c.SetNoteContent(id, content, s.now()); err != nil {
				return err
			}
		}
		n, ok := c.Note(id)
		if !ok {
			return WrapError(notes.ErrNotFound, "note "+id)
		}
		updated = n
		return nil
	})
	return updated, err
}

func (s *notesService) DeleteNote(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete_note", func(c *notes.Collection) error {
		return c.DeleteNote(id)
	})
}

func (s *notesService) SetSiteTitle(ctx context.Context, title string) error {
	return s.mutate(ctx, "set_site_title", func(c *notes.Collection) error {
		c.SetSiteTitle(title)
		return nil
	})
}

// ConfigureRemote replaces the remote address. The remembered version is
// kept only while the address stays the same.
func (s *notesService) ConfigureRemote(ctx context.Context, settings RemoteSettings) error {
	return s.mutate(ctx, "configure_remote", func(c *notes.Collection) error {
		next := notes.RemoteConfig{
			Owner:  strings.TrimSpace(settings.Owner),
			Repo:   strings.TrimSpace(settings.Repo),
			Branch: strings.TrimSpace(settings.Branch),
			Path:   strings.TrimSpace(settings.Path),
			Token:  c.Remote.Token,
		}
		if next.Branch == "" {
			next.Branch = notes.DefaultBranch
		}
		if next.Path == "" {
			next.Path = notes.DefaultPath
		}
		if settings.Token != nil {
			next.Token = strings.TrimSpace(*settings.Token)
		}
		if addressOf(next) == addressOf(c.Remote) {
			next.SHA = c.Remote.SHA
		}
		c.Remote = next
		return nil
	})
}

func (s *notesService) renderContent(content string, format ContentFormat) (string, error) {
	switch format {
	case "", FormatHTML:
		return content, nil
	case FormatMarkdown:
		out, err := s.renderer.ToHTML([]byte(content))
		if err != nil {
			return "", WrapError(err, "failed to render markdown")
		}
		return out, nil
	}
	return "", &notes.ValidationError{Field: "format", Message: "must be html or markdown"}
}

func addressOf(cfg notes.RemoteConfig) remote.Address {
	return remote.Address{Owner: cfg.Owner, Repo: cfg.Repo, Branch: cfg.Branch, Path: cfg.Path}
}
