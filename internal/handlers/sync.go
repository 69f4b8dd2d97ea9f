package handlers

import (
	"io"
	"net/http"
	"strconv"

	"studynotes/internal/service"
)

// SyncHandler serves remote configuration, pull, push, import and export.
type SyncHandler struct {
	notesService service.NotesService
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(notesService service.NotesService) *SyncHandler {
	return &SyncHandler{notesService: notesService}
}

// RemoteRequest sets the remote address. A missing token keeps the stored one.
type RemoteRequest struct {
	Owner  string  `json:"owner"`
	Repo   string  `json:"repo"`
	Branch string  `json:"branch"`
	Path   string  `json:"path"`
	Token  *string `json:"token"`
}

// Status returns the latest sync status, the remote address and recent attempts.
func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	st, err := h.notesService.Status(ctx)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, toStatusResponse(st))
}

// ConfigureRemote replaces the remote address.
func (h *SyncHandler) ConfigureRemote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RemoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.notesService.ConfigureRemote(ctx, service.RemoteSettings{
		Owner:  req.Owner,
		Repo:   req.Repo,
		Branch: req.Branch,
		Path:   req.Path,
		Token:  req.Token,
	})
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Pull replaces the local collection with the remote one.
func (h *SyncHandler) Pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	st, err := h.notesService.Pull(ctx)
	h.writeSyncResult(w, r, st, err)
}

// Push replaces the remote collection. ?force=true skips the version check.
func (h *SyncHandler) Push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	force := false
	if raw := r.URL.Query().Get("force"); raw != "" {
		var err error
		if force, err = strconv.ParseBool(raw); err != nil {
			writeError(w, ctx, http.StatusBadRequest, "force must be true or false")
			return
		}
	}

	st, err := h.notesService.Push(ctx, force)
	h.writeSyncResult(w, r, st, err)
}

func (h *SyncHandler) writeSyncResult(w http.ResponseWriter, r *http.Request, st service.SyncStatus, err error) {
	ctx := r.Context()
	resp := toSyncStatusResponse(st)
	if err != nil {
		code := statusCode(err)
		getLogger(ctx).WarnContext(ctx, "sync did not complete", "state", st.State, "error", err, "status", code)
		writeJSON(w, ctx, code, ErrorResponse{Error: service.StatusMessage(err), Sync: &resp})
		return
	}
	writeJSON(w, ctx, http.StatusOK, resp)
}

// Export downloads the collection as a JSON file. Unlike the collection and
// status responses, the export carries the stored remote token so that an
// import on another device can push without reconfiguring.
func (h *SyncHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := h.notesService.Export(ctx)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="notes-export.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		getLogger(ctx).ErrorContext(ctx, "failed to write export", "error", err)
	}
}

// Import replaces the collection with an uploaded export.
func (h *SyncHandler) Import(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		getLogger(ctx).WarnContext(ctx, "failed to read import body", "error", err)
		writeError(w, ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.notesService.Import(ctx, data); err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, toCollectionResponse(h.notesService.Collection(ctx)))
}
