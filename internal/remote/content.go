package remote

import (
	"encoding/base64"
	"strings"

	"studynotes/internal/notes"
)

// EncodeContent returns the standard base64 encoding of content, as the
// contents API expects in write bodies.
func EncodeContent(content []byte) string {
	return base64.StdEncoding.EncodeToString(content)
}

// DecodeContent decodes a contents API payload. The API wraps its base64
// output at 60 columns, so line breaks are dropped first.
func DecodeContent(encoded string) ([]byte, error) {
	cleaned := strings.NewReplacer("\n", "", "\r", "").Replace(encoded)
	out, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, &notes.MalformedPayloadError{Reason: "remote content is not valid base64", Err: err}
	}
	return out, nil
}
