package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"studynotes/internal/notes"
	"studynotes/internal/service"
	"studynotes/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testContext returns a context for testing.
// The default logger is already set to discard in init().
func testContext() context.Context {
	return context.Background()
}

var fixedNow = time.UnixMilli(1700000000000)

func fixedClock() time.Time { return fixedNow }

// newMockedService builds a service over an empty mocked store.
func newMockedService(t *testing.T, ctrl *gomock.Controller, opts ...service.Option) (service.NotesService, *mocks.MockLocalStore, *mocks.MockRemoteClient) {
	t.Helper()

	store := mocks.NewMockLocalStore(ctrl)
	client := mocks.NewMockRemoteClient(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(nil, nil)

	opts = append([]service.Option{service.WithClock(fixedClock)}, opts...)
	svc, err := service.NewNotesService(testContext(), store, client, opts...)
	if err != nil {
		t.Fatalf("NewNotesService() error = %v", err)
	}
	return svc, store, client
}

func TestNewNotesService_LoadSources(t *testing.T) {
	stored := notes.Default(fixedNow)
	stored.SiteTitle = "Stored"

	tests := []struct {
		name      string
		loaded    *notes.Collection
		loadErr   error
		wantErr   bool
		wantTitle string
	}{
		{name: "nothing stored uses defaults", wantTitle: notes.DefaultSiteTitle},
		{name: "stored collection", loaded: stored, wantTitle: "Stored"},
		{name: "malformed record uses defaults", loadErr: &notes.MalformedPayloadError{Reason: "missing notes"}, wantTitle: notes.DefaultSiteTitle},
		{name: "storage failure", loadErr: errors.New("disk I/O error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockLocalStore(ctrl)
			store.EXPECT().Load(gomock.Any()).Return(tt.loaded, tt.loadErr)

			svc, err := service.NewNotesService(testContext(), store, mocks.NewMockRemoteClient(ctrl), service.WithClock(fixedClock))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewNotesService() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := svc.Collection(testContext()).SiteTitle; got != tt.wantTitle {
				t.Errorf("SiteTitle = %q, want %q", got, tt.wantTitle)
			}
		})
	}
}

func TestNewNotesService_DefaultRemote(t *testing.T) {
	tests := []struct {
		name      string
		existing  notes.RemoteConfig
		wantOwner string
	}{
		{name: "empty remote is seeded", wantOwner: "env-owner"},
		{name: "configured remote is kept", existing: notes.RemoteConfig{Owner: "saved", Repo: "r"}, wantOwner: "saved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			loaded := notes.Default(fixedNow)
			loaded.Remote = tt.existing
			store := mocks.NewMockLocalStore(ctrl)
			store.EXPECT().Load(gomock.Any()).Return(loaded, nil)

			svc, err := service.NewNotesService(testContext(), store, mocks.NewMockRemoteClient(ctrl),
				service.WithDefaultRemote(notes.RemoteConfig{Owner: "env-owner", Repo: "env-repo", Token: "t"}))
			if err != nil {
				t.Fatalf("NewNotesService() error = %v", err)
			}
			got := svc.Collection(testContext()).Remote
			if got.Owner != tt.wantOwner {
				t.Errorf("Remote.Owner = %q, want %q", got.Owner, tt.wantOwner)
			}
			if got.Branch != notes.DefaultBranch || got.Path != notes.DefaultPath {
				t.Errorf("Remote branch/path = %q/%q, want defaults", got.Branch, got.Path)
			}
		})
	}
}

func TestNotesService_MutationsPersist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, store, _ := newMockedService(t, ctrl)
	ctx := testContext()

	var saved *notes.Collection
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *notes.Collection) error {
		saved = c
		return nil
	}).Times(3)

	section, err := svc.CreateSection(ctx, "Optimization")
	if err != nil {
		t.Fatalf("CreateSection() error = %v", err)
	}
	note, err := svc.CreateNote(ctx, service.NewNote{Title: "Gradient Descent", SectionID: section.ID})
	if err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
	if err := svc.DeleteSection(ctx, section.ID); err != nil {
		t.Fatalf("DeleteSection() error = %v", err)
	}

	if _, ok := saved.Note(note.ID); !ok {
		t.Errorf("saved collection lost note %q after section delete", note.ID)
	}
	if _, ok := saved.Section(section.ID); ok {
		t.Errorf("saved collection still has section %q", section.ID)
	}
}

func TestNotesService_SaveFailureLeavesStateUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, store, _ := newMockedService(t, ctrl)
	ctx := testContext()
	before := svc.Collection(ctx)

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	if _, err := svc.CreateSection(ctx, "Probability"); err == nil {
		t.Fatal("CreateSection() expected error when save fails")
	}
	after := svc.Collection(ctx)
	if len(after.Sections) != len(before.Sections) {
		t.Errorf("sections = %d after failed save, want %d", len(after.Sections), len(before.Sections))
	}
}

func TestNotesService_RejectedActionsDoNotSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newMockedService(t, ctrl)
	ctx := testContext()
	title := "New"

	tests := []struct {
		name      string
		action    func() error
		checkType func(error) bool
	}{
		{
			name:   "empty section title",
			action: func() error { _, err := svc.CreateSection(ctx, "  "); return err },
			checkType: func(err error) bool {
				var v *notes.ValidationError
				return errors.As(err, &v)
			},
		},
		{
			name:      "delete home",
			action:    func() error { return svc.DeleteNote(ctx, notes.HomeID) },
			checkType: func(err error) bool { var v *notes.ValidationError; return errors.As(err, &v) },
		},
		{
			name:      "delete unknown note",
			action:    func() error { return svc.DeleteNote(ctx, "missing") },
			checkType: func(err error) bool { return errors.Is(err, notes.ErrNotFound) },
		},
		{
			name:      "rename unknown section",
			action:    func() error { return svc.RenameSection(ctx, "missing", "x") },
			checkType: func(err error) bool { return errors.Is(err, notes.ErrNotFound) },
		},
		{
			name:      "update unknown note",
			action:    func() error { _, err := svc.UpdateNote(ctx, "missing", service.NoteUpdate{Title: &title}); return err },
			checkType: func(err error) bool { return errors.Is(err, notes.ErrNotFound) },
		},
		{
			name: "unknown content format",
			action: func() error {
				body := "x"
				_, err := svc.UpdateNote(ctx, "linear-regression", service.NoteUpdate{Content: &body, Format: "rtf"})
				return err
			},
			checkType: func(err error) bool { var v *notes.ValidationError; return errors.As(err, &v) && v.Field == "format" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.action()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.checkType(err) {
				t.Errorf("unexpected error type: %v", err)
			}
		})
	}
}

func TestNotesService_CreateNoteMarkdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, store, _ := newMockedService(t, ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	n, err := svc.CreateNote(testContext(), service.NewNote{
		Content: "# Bias and Variance\n\nThe tradeoff.",
		Format:  service.FormatMarkdown,
	})
	if err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
	if n.ID != "bias-and-variance" || n.Title != "Bias and Variance" {
		t.Errorf("CreateNote() = %s/%q, want bias-and-variance/\"Bias and Variance\"", n.ID, n.Title)
	}
	if !strings.Contains(n.Content, "<p>The tradeoff.</p>") {
		t.Errorf("CreateNote() content = %q, want rendered markdown", n.Content)
	}
	if n.UpdatedAt != fixedNow.UnixMilli() {
		t.Errorf("CreateNote() UpdatedAt = %d, want %d", n.UpdatedAt, fixedNow.UnixMilli())
	}
}

func TestNotesService_UpdateNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, store, _ := newMockedService(t, ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	title := "OLS"
	body := "<p>closed form</p>"
	n, err := svc.UpdateNote(testContext(), "linear-regression", service.NoteUpdate{Title: &title, Content: &body})
	if err != nil {
		t.Fatalf("UpdateNote() error = %v", err)
	}
	if n.Title != "OLS" || n.Content != body {
		t.Errorf("UpdateNote() = %+v", n)
	}

	view, err := svc.GetNote(testContext(), "linear-regression")
	if err != nil {
		t.Fatalf("GetNote() error = %v", err)
	}
	if view.Breadcrumb != "Foundations / OLS" {
		t.Errorf("Breadcrumb = %q, want Foundations / OLS", view.Breadcrumb)
	}
}

func TestNotesService_OpenNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, store, _ := newMockedService(t, ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	ctx := testContext()

	view, err := svc.OpenNote(ctx, "linear-regression")
	if err != nil {
		t.Fatalf("OpenNote() error = %v", err)
	}
	if !view.Selected || svc.Collection(ctx).SelectedNoteID != "linear-regression" {
		t.Errorf("OpenNote() did not select linear-regression")
	}

	view, err = svc.OpenNote(ctx, "missing")
	if err != nil {
		t.Fatalf("OpenNote() error = %v", err)
	}
	if view.Note.ID != notes.HomeID || view.Breadcrumb != notes.HomeLabel {
		t.Errorf("OpenNote(missing) = %s/%q, want home", view.Note.ID, view.Breadcrumb)
	}
}

func TestNotesService_ConfigureRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loaded := notes.Default(fixedNow)
	loaded.Remote = notes.RemoteConfig{Owner: "a", Repo: "r", Branch: "main", Path: "n.json", Token: "secret", SHA: "v1"}

	store := mocks.NewMockLocalStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(loaded, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	svc, err := service.NewNotesService(testContext(), store, mocks.NewMockRemoteClient(ctrl))
	if err != nil {
		t.Fatalf("NewNotesService() error = %v", err)
	}
	ctx := testContext()

	// Same address, token omitted: token and version survive.
	if err := svc.ConfigureRemote(ctx, service.RemoteSettings{Owner: " a ", Repo: "r", Branch: "main", Path: "n.json"}); err != nil {
		t.Fatalf("ConfigureRemote() error = %v", err)
	}
	got := svc.Collection(ctx).Remote
	if got.Token != "secret" || got.SHA != "v1" {
		t.Errorf("Remote = %+v, want token and sha kept", got)
	}

	// New address: version is forgotten, defaults fill branch and path.
	empty := ""
	if err := svc.ConfigureRemote(ctx, service.RemoteSettings{Owner: "b", Repo: "r", Token: &empty}); err != nil {
		t.Fatalf("ConfigureRemote() error = %v", err)
	}
	got = svc.Collection(ctx).Remote
	want := notes.RemoteConfig{Owner: "b", Repo: "r", Branch: notes.DefaultBranch, Path: notes.DefaultPath}
	if got != want {
		t.Errorf("Remote = %+v, want %+v", got, want)
	}
}

func TestNotesService_SetSiteTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, store, _ := newMockedService(t, ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	ctx := testContext()

	if err := svc.SetSiteTitle(ctx, "ML Notes"); err != nil {
		t.Fatalf("SetSiteTitle() error = %v", err)
	}
	if got := svc.Collection(ctx).SiteTitle; got != "ML Notes" {
		t.Errorf("SiteTitle = %q, want ML Notes", got)
	}
	if err := svc.SetSiteTitle(ctx, ""); err != nil {
		t.Fatalf("SetSiteTitle() error = %v", err)
	}
	if got := svc.Collection(ctx).SiteTitle; got != notes.DefaultSiteTitle {
		t.Errorf("SiteTitle = %q, want %q", got, notes.DefaultSiteTitle)
	}
}

func TestNotesService_CollectionIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newMockedService(t, ctrl)
	c := svc.Collection(testContext())
	c.SiteTitle = "mutated"
	delete(c.Notes, notes.HomeID)

	again := svc.Collection(testContext())
	if again.SiteTitle == "mutated" {
		t.Error("Collection() returned shared state")
	}
	if _, ok := again.Note(notes.HomeID); !ok {
		t.Error("Collection() returned shared notes map")
	}
}
