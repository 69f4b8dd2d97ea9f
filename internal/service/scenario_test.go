package service_test

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"studynotes/internal/notes"
	"studynotes/internal/remote"
	"studynotes/internal/remote/remotetest"
	"studynotes/internal/service"
	"studynotes/internal/storage"
)

type scenario struct {
	server *remotetest.Server
	store  *storage.CollectionStore
	events *storage.SyncEventRepo
	svc    service.NotesService
}

// newScenario wires a service to a sqlite database and an in-memory remote.
func newScenario(t *testing.T) *scenario {
	t.Helper()

	db := newDB(t)

	srv := remotetest.NewServer()
	srv.Token = "secret"
	t.Cleanup(srv.Close)

	sc := &scenario{
		server: srv,
		store:  storage.NewCollectionStore(storage.NewStateRepo(db)),
		events: storage.NewSyncEventRepo(db),
	}
	sc.svc = sc.open(t)

	err := sc.svc.ConfigureRemote(testContext(), service.RemoteSettings{Owner: "alice", Repo: "notes", Token: strPtr("secret")})
	if err != nil {
		t.Fatalf("ConfigureRemote() error = %v", err)
	}
	return sc
}

// open starts a fresh service over the scenario's database, as a restart would.
func (sc *scenario) open(t *testing.T) service.NotesService {
	t.Helper()
	svc, err := service.NewNotesService(testContext(), sc.store, remote.NewClient(sc.server.URL, 5*time.Second),
		service.WithSyncEvents(sc.events))
	if err != nil {
		t.Fatalf("NewNotesService() error = %v", err)
	}
	return svc
}

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("storage.Migrate() error = %v", err)
	}
	return db
}

func newCollectionStore(t *testing.T) *storage.CollectionStore {
	t.Helper()
	return storage.NewCollectionStore(storage.NewStateRepo(newDB(t)))
}

func strPtr(s string) *string { return &s }

func TestScenario_SequentialPushesNeverClobber(t *testing.T) {
	sc := newScenario(t)
	ctx := testContext()

	if _, err := sc.svc.Push(ctx, false); err != nil {
		t.Fatalf("first Push() error = %v", err)
	}
	_, v1, ok := sc.server.File(notes.DefaultPath)
	if !ok {
		t.Fatal("first Push() wrote nothing")
	}
	if got := sc.svc.Collection(ctx).Remote.SHA; got != v1 {
		t.Fatalf("Remote.SHA = %q, want %q", got, v1)
	}

	// Second push with the remembered version succeeds with a new version.
	if _, err := sc.svc.CreateNote(ctx, service.NewNote{Title: "Gradient Descent", SectionID: "foundations"}); err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
	st, err := sc.svc.Push(ctx, false)
	if err != nil {
		t.Fatalf("second Push() error = %v", err)
	}
	if st.Version == v1 || st.Version == "" {
		t.Errorf("second Push() version = %q, want a new version", st.Version)
	}

	// Someone else bumps the remote.
	bumped := sc.server.Seed(notes.DefaultPath, []byte(`{"siteTitle":"theirs","sections":[],"notes":{}}`))

	st, err = sc.svc.Push(ctx, false)
	if !errors.Is(err, remote.ErrVersionConflict) {
		t.Fatalf("third Push() error = %v, want ErrVersionConflict", err)
	}
	if st.State != service.StateConflict {
		t.Errorf("third Push() state = %s, want conflict", st.State)
	}
	content, version, _ := sc.server.File(notes.DefaultPath)
	if version != bumped || string(content) != `{"siteTitle":"theirs","sections":[],"notes":{}}` {
		t.Error("conflicting push overwrote the remote")
	}
	if _, ok := sc.svc.Collection(ctx).Note("gradient-descent"); !ok {
		t.Error("conflicting push changed local state")
	}

	// Force adopts the remote version and overwrites.
	if _, err := sc.svc.Push(ctx, true); err != nil {
		t.Fatalf("forced Push() error = %v", err)
	}
	if sc.server.Puts() != 3 {
		t.Errorf("remote accepted %d writes, want 3", sc.server.Puts())
	}
}

func TestScenario_PushedPayloadOmitsCredential(t *testing.T) {
	sc := newScenario(t)
	ctx := testContext()

	if _, err := sc.svc.Push(ctx, false); err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	content, _, _ := sc.server.File(notes.DefaultPath)
	pushed, err := notes.Decode(content)
	if err != nil {
		t.Fatalf("pushed payload does not decode: %v", err)
	}
	if pushed.Remote.Token != "" || pushed.Remote.SHA != "" {
		t.Errorf("pushed remote config = %+v, want no token or sha", pushed.Remote)
	}
	if pushed.Remote.Owner != "alice" {
		t.Errorf("pushed remote owner = %q, want alice", pushed.Remote.Owner)
	}
}

func TestScenario_PullAbsentThenPullAfterPush(t *testing.T) {
	sc := newScenario(t)
	ctx := testContext()

	st, err := sc.svc.Pull(ctx)
	if err != nil {
		t.Fatalf("Pull() error = %v", err)
	}
	if st.State != service.StateIdle || st.Message != "Nothing to pull: no file found at that path." {
		t.Errorf("Pull() = %+v, want nothing to pull", st)
	}

	if _, err := sc.svc.CreateSection(ctx, "Probability"); err != nil {
		t.Fatalf("CreateSection() error = %v", err)
	}
	if _, err := sc.svc.Push(ctx, false); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	// A second device with an empty store pulls the pushed collection.
	other, err := service.NewNotesService(ctx, newCollectionStore(t), remote.NewClient(sc.server.URL, 5*time.Second))
	if err != nil {
		t.Fatalf("NewNotesService() error = %v", err)
	}
	if err := other.ConfigureRemote(ctx, service.RemoteSettings{Owner: "alice", Repo: "notes", Token: strPtr("secret")}); err != nil {
		t.Fatalf("ConfigureRemote() error = %v", err)
	}
	if _, err := other.Pull(ctx); err != nil {
		t.Fatalf("Pull() error = %v", err)
	}
	if _, ok := other.Collection(ctx).Section("probability"); !ok {
		t.Error("pulled collection is missing the pushed section")
	}
	if other.Collection(ctx).Remote.SHA != sc.svc.Collection(ctx).Remote.SHA {
		t.Error("pulled collection should remember the remote version")
	}
}

func TestScenario_StateSurvivesRestart(t *testing.T) {
	sc := newScenario(t)
	ctx := testContext()

	if _, err := sc.svc.CreateNote(ctx, service.NewNote{Title: "Gradient Descent", SectionID: "foundations"}); err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
	if _, err := sc.svc.Push(ctx, false); err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	restarted := sc.open(t)
	c := restarted.Collection(ctx)
	if got := c.Breadcrumb("gradient-descent"); got != "Foundations / Gradient Descent" {
		t.Errorf("Breadcrumb after restart = %q", got)
	}
	if c.Remote.SHA == "" || c.Remote.Token != "secret" {
		t.Errorf("remote after restart = %+v, want sha and token kept", c.Remote)
	}

	st, err := restarted.Status(ctx)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if len(st.Events) != 1 || st.Events[0].Operation != "push" {
		t.Errorf("Status() events = %+v, want one push", st.Events)
	}
}

func TestScenario_WrongCredentialFails(t *testing.T) {
	sc := newScenario(t)
	ctx := testContext()

	if err := sc.svc.ConfigureRemote(ctx, service.RemoteSettings{Owner: "alice", Repo: "notes", Token: strPtr("wrong")}); err != nil {
		t.Fatalf("ConfigureRemote() error = %v", err)
	}
	st, err := sc.svc.Pull(ctx)
	var te *remote.TransportError
	if !errors.As(err, &te) || te.StatusCode != 401 {
		t.Fatalf("Pull() error = %v, want 401 TransportError", err)
	}
	if st.State != service.StateFailed || st.Message != "Remote request failed (401): Bad credentials" {
		t.Errorf("Pull() status = %+v", st)
	}
}
