package notes

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode serializes the collection as indented JSON.
func Encode(c *Collection) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}
	return data, nil
}

// Decode parses a serialized collection. The payload must be a JSON object
// carrying both "notes" and "sections"; anything else is malformed.
// The result is not normalized.
func Decode(data []byte) (*Collection, error) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, &MalformedPayloadError{Reason: "not a JSON object", Err: err}
	}
	for _, key := range []string{"notes", "sections"} {
		raw, ok := shape[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, &MalformedPayloadError{Reason: fmt.Sprintf("missing %q", key)}
		}
	}

	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &MalformedPayloadError{Reason: "unexpected collection shape", Err: err}
	}
	return &c, nil
}
