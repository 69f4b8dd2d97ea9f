// Package remotetest provides an in-memory contents API server for tests.
package remotetest

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Server emulates the GitHub contents endpoint for a single repository.
type Server struct {
	*httptest.Server

	mu      sync.Mutex
	files   map[string]file
	puts    int
	lastPut map[string]any
	// Token, when set, must be presented as "token <Token>".
	Token string
}

type file struct {
	content []byte
	sha     string
}

// NewServer starts a server. Callers must Close it.
func NewServer() *Server {
	s := &Server{files: make(map[string]file)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Seed stores content at path and returns its version.
func (s *Server) Seed(path string, content []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := file{content: append([]byte(nil), content...), sha: versionOf(content, len(s.files)+s.puts)}
	s.files[path] = f
	return f.sha
}

// File returns the stored content and version at path.
func (s *Server) File(path string) ([]byte, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[path]
	return f.content, f.sha, ok
}

// Puts returns the number of accepted writes.
func (s *Server) Puts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}

// LastPut returns the decoded JSON body of the most recent write request.
func (s *Server) LastPut() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPut
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if s.Token != "" && r.Header.Get("Authorization") != "token "+s.Token {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
		return
	}

	// /repos/{owner}/{repo}/contents/{path...}
	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 5)
	if len(parts) < 5 || parts[0] != "repos" || parts[3] != "contents" {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}
	path := parts[4]

	switch r.Method {
	case http.MethodGet:
		s.handleGet(w, path)
	case http.MethodPut:
		s.handlePut(w, r, path)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGet(w http.ResponseWriter, path string) {
	s.mu.Lock()
	f, ok := s.files[path]
	s.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}

	// Wrap at 60 columns like the real API.
	enc := base64.StdEncoding.EncodeToString(f.content)
	var b strings.Builder
	for len(enc) > 60 {
		b.WriteString(enc[:60])
		b.WriteByte('\n')
		enc = enc[60:]
	}
	b.WriteString(enc)
	b.WriteByte('\n')

	writeJSON(w, http.StatusOK, map[string]string{
		"type":     "file",
		"encoding": "base64",
		"content":  b.String(),
		"sha":      f.sha,
	})
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request, path string) {
	var body struct {
		Message string `json:"message"`
		Content string `json:"content"`
		SHA     string `json:"sha"`
		Branch  string `json:"branch"`
	}
	var raw map[string]any
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Problems parsing JSON"})
		return
	}
	buf, _ := json.Marshal(raw)
	_ = json.Unmarshal(buf, &body)

	content, err := base64.StdEncoding.DecodeString(body.Content)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "content is not valid Base64"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPut = raw

	current, exists := s.files[path]
	switch {
	case exists && body.SHA == "":
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": `Invalid request. "sha" wasn't supplied.`})
		return
	case exists && body.SHA != current.sha:
		writeJSON(w, http.StatusConflict, map[string]string{"message": "does not match " + current.sha})
		return
	case !exists && body.SHA != "":
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}

	s.puts++
	f := file{content: content, sha: versionOf(content, len(s.files)+s.puts)}
	s.files[path] = f

	status := http.StatusOK
	if !exists {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]any{
		"content": map[string]string{"path": path, "sha": f.sha},
		"commit":  map[string]string{"message": body.Message},
	})
}

func versionOf(content []byte, n int) string {
	h := sha1.New()
	h.Write(content)
	h.Write([]byte{byte(n), byte(n >> 8)})
	return hex.EncodeToString(h.Sum(nil))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
