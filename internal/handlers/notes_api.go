package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"studynotes/internal/service"
)

// NotesHandler serves note CRUD.
type NotesHandler struct {
	notesService service.NotesService
}

// NewNotesHandler creates a new NotesHandler.
func NewNotesHandler(notesService service.NotesService) *NotesHandler {
	return &NotesHandler{notesService: notesService}
}

// CreateNoteRequest is the body of a note create.
type CreateNoteRequest struct {
	Title     string `json:"title"`
	SectionID string `json:"sectionId"`
	Content   string `json:"content"`
	// Format is "html" (default) or "markdown".
	Format string `json:"format"`
}

// UpdateNoteRequest is the body of a note update. Omitted fields are unchanged.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Format  string  `json:"format"`
}

// Create adds a note and selects it.
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.notesService.CreateNote(ctx, service.NewNote{
		Title:     req.Title,
		SectionID: req.SectionID,
		Content:   req.Content,
		Format:    service.ContentFormat(req.Format),
	})
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusCreated, toNoteResponse(note))
}

// Get returns a note with its breadcrumb.
func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view, err := h.notesService.GetNote(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, toNoteViewResponse(view))
}

// Open selects a note. Unknown ids open home.
func (h *NotesHandler) Open(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view, err := h.notesService.OpenNote(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, toNoteViewResponse(view))
}

// Update renames a note or saves its content.
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req UpdateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == nil && req.Content == nil {
		writeError(w, ctx, http.StatusBadRequest, "Nothing to update")
		return
	}

	note, err := h.notesService.UpdateNote(ctx, id, service.NoteUpdate{
		Title:   req.Title,
		Content: req.Content,
		Format:  service.ContentFormat(req.Format),
	})
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, toNoteResponse(note))
}

// Delete removes a note from the collection and every section.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.notesService.DeleteNote(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
