package remote

import (
	"bytes"
	"testing"
)

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    []byte
		wantErr bool
	}{
		{name: "plain", encoded: "aGVsbG8=", want: []byte("hello")},
		{name: "wrapped lines", encoded: "aGVs\nbG8=\n", want: []byte("hello")},
		{name: "crlf", encoded: "aGVs\r\nbG8=", want: []byte("hello")},
		{name: "empty", encoded: "", want: []byte{}},
		{name: "invalid", encoded: "!!not base64", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeContent(tt.encoded)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeContent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !bytes.Equal(got, tt.want) {
				t.Errorf("DecodeContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeContent_Unicode(t *testing.T) {
	in := []byte(`{"title":"Δ-learning ✓ 日本語"}`)
	out, err := DecodeContent(EncodeContent(in))
	if err != nil {
		t.Fatalf("DecodeContent() error = %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Errorf("round trip = %q, want %q", out, in)
	}
}
