package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"studynotes/internal/handlers"
	"studynotes/internal/service"
)

const healthPath = "/api/health"

// Deps holds dependencies for the HTTP router.
type Deps struct {
	NotesService service.NotesService
	Store        handlers.Pinger
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Request-scoped logger and status logging
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)

	// Add CORS middleware
	r.Use(CORS)

	healthHandler := handlers.NewHealthHandler(deps.Store, deps.NotesService)
	collectionHandler := handlers.NewCollectionHandler(deps.NotesService)
	notesHandler := handlers.NewNotesHandler(deps.NotesService)
	syncHandler := handlers.NewSyncHandler(deps.NotesService)
	viewHandler := handlers.NewNoteViewHandler(deps.NotesService)

	// Register API routes
	r.Method(http.MethodGet, healthPath, healthHandler)
	r.Route("/api", func(r chi.Router) {
		r.Get("/collection", collectionHandler.Get)
		r.Put("/site-title", collectionHandler.SetSiteTitle)

		r.Route("/sections", func(r chi.Router) {
			r.Post("/", collectionHandler.CreateSection)
			r.Patch("/{id}", collectionHandler.RenameSection)
			r.Delete("/{id}", collectionHandler.DeleteSection)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", notesHandler.Create)
			r.Get("/{id}", notesHandler.Get)
			r.Patch("/{id}", notesHandler.Update)
			r.Delete("/{id}", notesHandler.Delete)
			r.Post("/{id}/open", notesHandler.Open)
		})

		r.Get("/status", syncHandler.Status)
		r.Put("/remote", syncHandler.ConfigureRemote)
		r.Post("/sync/pull", syncHandler.Pull)
		r.Post("/sync/push", syncHandler.Push)
		r.Get("/export", syncHandler.Export)
		r.Post("/import", syncHandler.Import)
	})

	// Read-only note pages
	r.Method(http.MethodGet, "/notes/{id}", viewHandler)

	// Root opens the selected note
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		selected := deps.NotesService.Collection(r.Context()).SelectedNoteID
		http.Redirect(w, r, "/notes/"+url.PathEscape(selected), http.StatusFound)
	})

	return r
}
