package notes

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	c := Default(testNow)
	_, _ = c.CreateNote("Überblick – naïve Bayes 🚀", "", testNow)
	c.Remote = RemoteConfig{Owner: "me", Repo: "notes", Branch: "main", Path: "n.json", Token: "tok", SHA: "abc"}

	data, err := Encode(c)
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Errorf("Decode(Encode(c)) = %+v, want %+v", got, c)
	}
}

func TestEncode_Indented(t *testing.T) {
	data, err := Encode(Default(testNow))
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"siteTitle\": \"Study Notes\"") {
		t.Errorf("Encode() output not 2-space indented:\n%s", data)
	}
	if !strings.Contains(string(data), "\"github\"") {
		t.Error("Encode() should store the remote config under the github key")
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "<html>"},
		{name: "array", input: `[1,2,3]`},
		{name: "missing notes", input: `{"sections": []}`},
		{name: "missing sections", input: `{"notes": {}}`},
		{name: "null notes", input: `{"notes": null, "sections": []}`},
		{name: "wrong types", input: `{"notes": [], "sections": {}}`},
		{name: "empty", input: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input))
			if err == nil {
				t.Fatalf("Decode() = %+v, want error", got)
			}
			if !errors.Is(err, ErrMalformedPayload) {
				t.Errorf("Decode() error = %v, want ErrMalformedPayload", err)
			}
			var mErr *MalformedPayloadError
			if !errors.As(err, &mErr) || mErr.Reason == "" {
				t.Errorf("Decode() error = %v, want MalformedPayloadError with reason", err)
			}
		})
	}
}

func TestDecode_BrowserExportShape(t *testing.T) {
	input := `{
  "siteTitle": "Study Notes",
  "sections": [{"id": "foundations", "title": "Foundations", "notes": ["linear-regression"]}],
  "notes": {
    "home": {"id": "home", "title": "Home", "content": "<h1>Welcome</h1>", "updatedAt": 1700000000000},
    "linear-regression": {"id": "linear-regression", "title": "Linear Regression", "content": "<h1>LR</h1>", "updatedAt": 1700000000001}
  },
  "selectedNoteId": "home",
  "github": {"owner": "", "repo": "", "branch": "gh-pages", "path": "data/notes.json", "token": ""}
}`

	c, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if c.Notes["linear-regression"].UpdatedAt != 1700000000001 {
		t.Errorf("Decode() updatedAt = %d", c.Notes["linear-regression"].UpdatedAt)
	}
	if c.Remote.Branch != "gh-pages" {
		t.Errorf("Decode() remote branch = %q", c.Remote.Branch)
	}
	if got := c.Breadcrumb("linear-regression"); got != "Foundations / Linear Regression" {
		t.Errorf("Breadcrumb() = %q", got)
	}
}
