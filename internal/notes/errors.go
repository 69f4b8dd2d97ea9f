package notes

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a section or note id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrMalformedPayload is returned when bytes cannot be read as a Collection.
	ErrMalformedPayload = errors.New("malformed payload")
)

// ValidationError represents a rejected mutation on a named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// MalformedPayloadError describes why a payload was rejected.
// It matches ErrMalformedPayload with errors.Is.
type MalformedPayloadError struct {
	Reason string
	Err    error
}

func (e *MalformedPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrMalformedPayload, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedPayload, e.Reason)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

func (e *MalformedPayloadError) Is(target error) bool {
	return target == ErrMalformedPayload
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}
