package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"studynotes/internal/service"
)

// CollectionHandler serves the collection and its sections.
type CollectionHandler struct {
	notesService service.NotesService
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(notesService service.NotesService) *CollectionHandler {
	return &CollectionHandler{notesService: notesService}
}

// SectionRequest is the body of section create and rename.
type SectionRequest struct {
	Title string `json:"title"`
}

// SiteTitleRequest is the body of a site title change.
type SiteTitleRequest struct {
	Title string `json:"title"`
}

// Get returns the whole collection.
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(w, ctx, http.StatusOK, toCollectionResponse(h.notesService.Collection(ctx)))
}

// CreateSection adds a section.
func (h *CollectionHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	section, err := h.notesService.CreateSection(ctx, req.Title)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusCreated, toSectionResponse(section))
}

// RenameSection changes a section's title.
func (h *CollectionHandler) RenameSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req SectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.notesService.RenameSection(ctx, id, req.Title); err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSection removes a section. Its notes are kept.
func (h *CollectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.notesService.DeleteSection(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetSiteTitle renames the site.
func (h *CollectionHandler) SetSiteTitle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SiteTitleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.notesService.SetSiteTitle(ctx, req.Title); err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
