// Package remote talks to a GitHub-style versioned contents API: read an
// object together with its version token, and write it back conditioned on
// that token.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"studynotes/internal/contextutil"
	"studynotes/internal/notes"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com"

// ErrVersionConflict is returned when a conditional write was rejected
// because the remote version no longer matches.
var ErrVersionConflict = errors.New("remote version conflict")

// Address locates the remote object.
type Address struct {
	Owner  string
	Repo   string
	Branch string
	Path   string
}

func (a Address) String() string {
	return fmt.Sprintf("%s/%s@%s:%s", a.Owner, a.Repo, a.Branch, a.Path)
}

// Object is a fetched remote object.
type Object struct {
	Content []byte
	Version string
}

// TransportError is a non-success response other than 404 on fetch.
type TransportError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("remote %s failed: %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("remote %s failed: %d %s", e.Op, e.StatusCode, body)
}

// maxDetail bounds the response text carried into status messages.
const maxDetail = 200

// Detail returns the server's explanation of the failure: the "message"
// field of a JSON error body, otherwise the trimmed body. It is empty when
// the server sent nothing.
func (e *TransportError) Detail() string {
	body := strings.TrimSpace(e.Body)
	var apiErr struct {
		Message string `json:"message"`
	}
	if json.Unmarshal([]byte(body), &apiErr) == nil && apiErr.Message != "" {
		body = strings.TrimSpace(apiErr.Message)
	}
	if r := []rune(body); len(r) > maxDetail {
		body = string(r[:maxDetail]) + "…"
	}
	return body
}

// Client is a client for the contents API.
type Client struct {
	BaseURL   string
	UserAgent string
	client    *http.Client
}

// NewClient creates a new contents API client. A zero timeout means no timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: "studynotes-sync",
		client:    &http.Client{Timeout: timeout},
	}
}

// contentsResponse is the subset of the contents API file response we use.
type contentsResponse struct {
	Type     string `json:"type"`
	Encoding string `json:"encoding"`
	Content  string `json:"content"`
	SHA      string `json:"sha"`
}

// putRequest is the body of a contents write.
type putRequest struct {
	Message string `json:"message"`
	Branch  string `json:"branch,omitempty"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
}

// putResponse is the subset of the contents write response we use.
type putResponse struct {
	Content struct {
		SHA string `json:"sha"`
	} `json:"content"`
}

// Fetch reads the object at addr. It returns nil and no error when nothing
// exists at that path.
func (c *Client) Fetch(ctx context.Context, addr Address, credential string) (*Object, error) {
	logger := contextutil.LoggerFromContext(ctx)

	endpoint := c.contentsURL(addr)
	if addr.Branch != "" {
		endpoint += "?ref=" + url.QueryEscape(addr.Branch)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, credential)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		logger.DebugContext(ctx, "remote object absent", "address", addr.String())
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &TransportError{Op: "GET", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var meta contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, &notes.MalformedPayloadError{Reason: "unreadable contents response", Err: err}
	}
	if meta.Type != "" && meta.Type != "file" {
		return nil, fmt.Errorf("remote path %s is a %s, not a file", addr.Path, meta.Type)
	}
	if meta.Encoding == "none" {
		return nil, fmt.Errorf("remote file %s is too large for the contents API", addr.Path)
	}

	content, err := DecodeContent(meta.Content)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "fetched remote object", "address", addr.String(), "version", meta.SHA, "bytes", len(content))
	return &Object{Content: content, Version: meta.SHA}, nil
}

// Put writes content at addr. When expectedVersion is set the write only
// succeeds if it still names the current remote version; otherwise the
// returned error matches ErrVersionConflict. It returns the new version.
func (c *Client) Put(ctx context.Context, addr Address, credential string, content []byte, message, expectedVersion string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	payload := putRequest{
		Message: message,
		Branch:  addr.Branch,
		Content: EncodeContent(content),
		SHA:     expectedVersion,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentsURL(addr), bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, credential)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		transportErr := &TransportError{Op: "PUT", StatusCode: resp.StatusCode, Body: string(raw)}
		if isConflict(resp.StatusCode, expectedVersion) {
			logger.WarnContext(ctx, "remote rejected conditional write", "address", addr.String(), "expected_version", expectedVersion, "status", resp.StatusCode)
			return "", fmt.Errorf("%w: %w", ErrVersionConflict, transportErr)
		}
		return "", transportErr
	}

	var out putResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Content.SHA == "" {
		return "", fmt.Errorf("remote write response carried no version")
	}

	logger.DebugContext(ctx, "wrote remote object", "address", addr.String(), "version", out.Content.SHA, "bytes", len(content))
	return out.Content.SHA, nil
}

// isConflict maps a failed write to a version conflict. 409 is a stale sha;
// 422 without a sha means the object appeared since it was last seen absent.
func isConflict(status int, expectedVersion string) bool {
	switch status {
	case http.StatusConflict:
		return true
	case http.StatusUnprocessableEntity:
		return expectedVersion == ""
	}
	return false
}

func (c *Client) contentsURL(addr Address) string {
	segments := strings.Split(strings.Trim(addr.Path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		c.BaseURL, url.PathEscape(addr.Owner), url.PathEscape(addr.Repo), strings.Join(segments, "/"))
}

func (c *Client) setHeaders(req *http.Request, credential string) {
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.UserAgent)
	if credential != "" {
		req.Header.Set("Authorization", "token "+credential)
	}
}
