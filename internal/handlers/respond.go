package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"studynotes/internal/contextutil"
	"studynotes/internal/notes"
	"studynotes/internal/remote"
	"studynotes/internal/service"
)

// maxBodyBytes bounds request bodies, imports included.
const maxBodyBytes = 10 << 20

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	// Sync is set when a pull or push failed.
	Sync *SyncStatusResponse `json:"sync,omitempty"`
}

func getLogger(ctx context.Context) *slog.Logger {
	return contextutil.LoggerFromContext(ctx)
}

// statusCode maps a service error to an HTTP status.
func statusCode(err error) int {
	var validationErr *notes.ValidationError
	var transportErr *remote.TransportError
	switch {
	case errors.As(err, &validationErr), errors.Is(err, service.ErrRemoteNotConfigured):
		return http.StatusBadRequest
	case errors.Is(err, notes.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, remote.ErrVersionConflict), errors.Is(err, service.ErrSyncInProgress):
		return http.StatusConflict
	case errors.Is(err, notes.ErrMalformedPayload):
		return http.StatusUnprocessableEntity
	case errors.As(err, &transportErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// handleServiceError logs err and writes the mapped error response.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error) {
	code := statusCode(err)
	logger := getLogger(ctx)
	if code >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "service error", "error", err, "status", code)
	} else {
		logger.WarnContext(ctx, "request rejected", "error", err, "status", code)
	}
	writeJSON(w, ctx, code, ErrorResponse{Error: service.StatusMessage(err)})
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, ctx context.Context, statusCode int, message string) {
	writeJSON(w, ctx, statusCode, ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, ctx context.Context, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		getLogger(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// decodeJSON reads a JSON request body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ctx := r.Context()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		getLogger(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, ctx, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
