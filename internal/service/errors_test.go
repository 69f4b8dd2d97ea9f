package service

import (
	"errors"
	"fmt"
	"testing"

	"studynotes/internal/notes"
	"studynotes/internal/remote"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		msg     string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "nil error",
			err:     nil,
			msg:     "context",
			wantNil: true,
		},
		{
			name:    "wrapped error",
			err:     errors.New("original error"),
			msg:     "context",
			wantNil: false,
			wantMsg: "context: original error",
		},
		{
			name:    "empty message",
			err:     errors.New("original error"),
			msg:     "",
			wantNil: false,
			wantMsg: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError(tt.err, tt.msg)
			if tt.wantNil {
				if got != nil {
					t.Errorf("WrapError() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Errorf("WrapError() = nil, want error")
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("WrapError() = %v, want %v", got.Error(), tt.wantMsg)
			}
			// Verify error wrapping
			if !errors.Is(got, tt.err) {
				t.Errorf("WrapError() should wrap original error")
			}
		})
	}
}

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "sync in progress", err: ErrSyncInProgress, want: "A sync is already running."},
		{name: "not configured", err: WrapError(ErrRemoteNotConfigured, "push"), want: "Set the remote owner and repository first."},
		{
			name: "conflict",
			err:  fmt.Errorf("%w: %w", remote.ErrVersionConflict, &remote.TransportError{Op: "PUT", StatusCode: 409}),
			want: "Remote changed since the last sync. Pull first, or force the push.",
		},
		{name: "malformed", err: WrapError(&notes.MalformedPayloadError{Reason: `missing "notes"`}, "pull"), want: `Not a notes file: missing "notes".`},
		{name: "malformed sentinel", err: WrapError(notes.ErrMalformedPayload, "import"), want: "Not a notes file."},
		{name: "validation", err: &notes.ValidationError{Field: "title", Message: "cannot be empty"}, want: "Invalid title: cannot be empty."},
		{name: "not found", err: fmt.Errorf("note %q: %w", "x", notes.ErrNotFound), want: "Not found."},
		{name: "transport", err: WrapError(&remote.TransportError{Op: "GET", StatusCode: 401}, "fetch"), want: "Remote request failed (401)."},
		{
			name: "transport with api message",
			err:  &remote.TransportError{Op: "GET", StatusCode: 403, Body: `{"message":"API rate limit exceeded"}`},
			want: "Remote request failed (403): API rate limit exceeded",
		},
		{
			name: "transport with plain body",
			err:  &remote.TransportError{Op: "PUT", StatusCode: 502, Body: "  bad gateway\n"},
			want: "Remote request failed (502): bad gateway",
		},
		{name: "other", err: errors.New("disk full"), want: "Failed: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusMessage(tt.err); got != tt.want {
				t.Errorf("StatusMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
