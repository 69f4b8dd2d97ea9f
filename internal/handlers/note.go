package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"studynotes/internal/notes"
	"studynotes/internal/service"
)

// NoteViewHandler serves a note as a read-only HTML page.
type NoteViewHandler struct {
	notesService service.NotesService
	template     *template.Template
}

// notePageData holds template data for rendered note pages.
type notePageData struct {
	SiteTitle  string
	Title      string
	Breadcrumb string
	Updated    string
	Content    template.HTML
}

// NewNoteViewHandler creates a new handler for note pages.
func NewNoteViewHandler(notesService service.NotesService) *NoteViewHandler {
	tmpl := template.Must(template.New("note").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} · {{.SiteTitle}}</title>
  <style>
    body { font-family: sans-serif; margin: 0 auto; padding: 1rem; max-width: 820px; line-height: 1.6; }
    header { border-bottom: 1px solid #ddd; margin-bottom: 1.5rem; }
    pre { background: #f5f5f5; padding: 0.75rem; overflow-x: auto; }
    .meta { color: #666; font-size: 0.9rem; }
  </style>
</head>
<body>
  <header>
    <nav class="meta"><a href="/notes/home">{{.SiteTitle}}</a> &middot; {{.Breadcrumb}}</nav>
    <h1>{{.Title}}</h1>
    <p class="meta">Updated {{.Updated}}</p>
  </header>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &NoteViewHandler{
		notesService: notesService,
		template:     tmpl,
	}
}

// ServeHTTP renders the requested note. Note content is stored HTML and is
// written as is.
func (h *NoteViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := getLogger(ctx)

	id := chi.URLParam(r, "id")
	view, err := h.notesService.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, notes.ErrNotFound) {
			http.Error(w, "note not found", http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "failed to load note", "id", id, "error", err)
		http.Error(w, "failed to render note", http.StatusInternalServerError)
		return
	}

	pageData := notePageData{
		SiteTitle:  h.notesService.Collection(ctx).SiteTitle,
		Title:      view.Note.Title,
		Breadcrumb: view.Breadcrumb,
		Updated:    view.Note.Updated().UTC().Format(time.RFC1123),
		Content:    template.HTML(view.Note.Content),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute note template", "id", id, "error", err)
		http.Error(w, "failed to render note", http.StatusInternalServerError)
		return
	}
}
