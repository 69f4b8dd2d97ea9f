package service

import (
	"errors"
	"fmt"

	"studynotes/internal/notes"
	"studynotes/internal/remote"
)

var (
	// ErrSyncInProgress is returned when a pull or push is requested while
	// another one is still running.
	ErrSyncInProgress = errors.New("a sync is already in progress")
	// ErrRemoteNotConfigured is returned by sync operations when no owner
	// and repository have been set.
	ErrRemoteNotConfigured = errors.New("remote is not configured")
)

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// StatusMessage renders err as the short status line shown to the user.
func StatusMessage(err error) string {
	if err == nil {
		return ""
	}

	var transportErr *remote.TransportError
	var validationErr *notes.ValidationError
	var malformedErr *notes.MalformedPayloadError
	switch {
	case errors.Is(err, ErrSyncInProgress):
		return "A sync is already running."
	case errors.Is(err, ErrRemoteNotConfigured):
		return "Set the remote owner and repository first."
	case errors.Is(err, remote.ErrVersionConflict):
		return "Remote changed since the last sync. Pull first, or force the push."
	case errors.As(err, &malformedErr):
		return fmt.Sprintf("Not a notes file: %s.", malformedErr.Reason)
	case errors.Is(err, notes.ErrMalformedPayload):
		return "Not a notes file."
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Invalid %s: %s.", validationErr.Field, validationErr.Message)
	case errors.Is(err, notes.ErrNotFound):
		return "Not found."
	case errors.As(err, &transportErr):
		if detail := transportErr.Detail(); detail != "" {
			return fmt.Sprintf("Remote request failed (%d): %s", transportErr.StatusCode, detail)
		}
		return fmt.Sprintf("Remote request failed (%d).", transportErr.StatusCode)
	}
	return "Failed: " + err.Error()
}
