// Package app wires configuration, storage, the remote client and the notes
// service. The API server and the operator CLI share it.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"studynotes/internal/config"
	"studynotes/internal/markup"
	"studynotes/internal/remote"
	"studynotes/internal/service"
	"studynotes/internal/storage"
)

// App holds the wired components.
type App struct {
	Config *config.Config
	DB     *sql.DB
	Store  *storage.CollectionStore
	Events *storage.SyncEventRepo
	Notes  service.NotesService
}

// NewLogger builds the process logger from the configured level and format.
func NewLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// New opens the database, runs migrations and loads the notes service.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.InfoContext(ctx, "Database initialized", "path", cfg.DBPath)

	store := storage.NewCollectionStore(storage.NewStateRepo(db))
	events := storage.NewSyncEventRepo(db)
	client := remote.NewClient(cfg.RemoteAPIURL, cfg.RemoteTimeout)

	notesService, err := service.NewNotesService(ctx, store, client,
		service.WithDefaultRemote(cfg.DefaultRemote()),
		service.WithSyncEvents(events),
		service.WithRenderer(markup.NewRenderer()),
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}

	return &App{
		Config: cfg,
		DB:     db,
		Store:  store,
		Events: events,
		Notes:  notesService,
	}, nil
}

// PullOnStart pulls the remote collection when enabled and configured.
// A failed pull is logged and the local collection stays in use.
func (a *App) PullOnStart(ctx context.Context) {
	if !a.Config.RemotePullOnStart {
		return
	}
	if !a.Notes.Collection(ctx).Remote.Configured() {
		slog.InfoContext(ctx, "Pull on start skipped, remote not configured")
		return
	}

	st, err := a.Notes.Pull(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Pull on start failed", "state", st.State, "error", err)
		return
	}
	slog.InfoContext(ctx, "Pull on start finished", "message", st.Message, "version", st.Version)
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}
