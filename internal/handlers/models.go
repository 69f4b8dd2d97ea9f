package handlers

import (
	"sort"
	"time"

	"studynotes/internal/notes"
	"studynotes/internal/service"
	"studynotes/internal/storage"
)

// NoteResponse is a note as returned by the API.
type NoteResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	UpdatedAt  int64  `json:"updatedAt"`
	Breadcrumb string `json:"breadcrumb,omitempty"`
	Selected   bool   `json:"selected,omitempty"`
}

// SectionResponse is a section as returned by the API.
type SectionResponse struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Notes []string `json:"notes"`
}

// RemoteResponse is the remote address. The credential is never returned.
type RemoteResponse struct {
	Owner      string `json:"owner"`
	Repo       string `json:"repo"`
	Branch     string `json:"branch"`
	Path       string `json:"path"`
	SHA        string `json:"sha,omitempty"`
	HasToken   bool   `json:"hasToken"`
	Configured bool   `json:"configured"`
}

// CollectionResponse is the whole collection without the credential.
type CollectionResponse struct {
	SiteTitle      string                  `json:"siteTitle"`
	Sections       []SectionResponse       `json:"sections"`
	Notes          map[string]NoteResponse `json:"notes"`
	NoteOrder      []string                `json:"noteOrder"`
	SelectedNoteID string                  `json:"selectedNoteId"`
	Remote         RemoteResponse          `json:"remote"`
}

// SyncStatusResponse is the latest sync step.
type SyncStatusResponse struct {
	Operation string `json:"operation,omitempty"`
	State     string `json:"state"`
	Message   string `json:"message,omitempty"`
	Version   string `json:"version,omitempty"`
	At        string `json:"at,omitempty"`
}

// SyncEventResponse is a recorded sync attempt.
type SyncEventResponse struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
	Outcome   string `json:"outcome"`
	Version   string `json:"version,omitempty"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// StatusResponse is the sync surface.
type StatusResponse struct {
	Sync   SyncStatusResponse  `json:"sync"`
	Remote RemoteResponse      `json:"remote"`
	Events []SyncEventResponse `json:"events"`
}

func toNoteResponse(n notes.Note) NoteResponse {
	return NoteResponse{ID: n.ID, Title: n.Title, Content: n.Content, UpdatedAt: n.UpdatedAt}
}

func toNoteViewResponse(v service.NoteView) NoteResponse {
	resp := toNoteResponse(v.Note)
	resp.Breadcrumb = v.Breadcrumb
	resp.Selected = v.Selected
	return resp
}

func toSectionResponse(s notes.Section) SectionResponse {
	ids := s.Notes
	if ids == nil {
		ids = []string{}
	}
	return SectionResponse{ID: s.ID, Title: s.Title, Notes: ids}
}

func toRemoteResponse(cfg notes.RemoteConfig, hasToken bool) RemoteResponse {
	return RemoteResponse{
		Owner:      cfg.Owner,
		Repo:       cfg.Repo,
		Branch:     cfg.Branch,
		Path:       cfg.Path,
		SHA:        cfg.SHA,
		HasToken:   hasToken,
		Configured: cfg.Configured(),
	}
}

func toCollectionResponse(c *notes.Collection) CollectionResponse {
	resp := CollectionResponse{
		SiteTitle:      c.SiteTitle,
		Sections:       make([]SectionResponse, 0, len(c.Sections)),
		Notes:          make(map[string]NoteResponse, len(c.Notes)),
		NoteOrder:      make([]string, 0, len(c.Notes)),
		SelectedNoteID: c.SelectedNoteID,
		Remote:         toRemoteResponse(c.Remote, c.Remote.Token != ""),
	}
	for _, s := range c.Sections {
		resp.Sections = append(resp.Sections, toSectionResponse(s))
	}
	for id, n := range c.Notes {
		nr := toNoteResponse(n)
		nr.Breadcrumb = c.Breadcrumb(id)
		nr.Selected = id == c.SelectedNoteID
		resp.Notes[id] = nr
		resp.NoteOrder = append(resp.NoteOrder, id)
	}
	sort.Strings(resp.NoteOrder)
	return resp
}

func toSyncStatusResponse(st service.SyncStatus) SyncStatusResponse {
	resp := SyncStatusResponse{
		Operation: st.Operation,
		State:     string(st.State),
		Message:   st.Message,
		Version:   st.Version,
	}
	if resp.State == "" {
		resp.State = string(service.StateIdle)
	}
	if !st.At.IsZero() {
		resp.At = st.At.UTC().Format(time.RFC3339)
	}
	return resp
}

func toStatusResponse(st service.Status) StatusResponse {
	resp := StatusResponse{
		Sync:   toSyncStatusResponse(st.Sync),
		Remote: toRemoteResponse(st.Remote, st.HasToken),
		Events: make([]SyncEventResponse, 0, len(st.Events)),
	}
	for _, e := range st.Events {
		resp.Events = append(resp.Events, toSyncEventResponse(e))
	}
	return resp
}

func toSyncEventResponse(e storage.SyncEventRecord) SyncEventResponse {
	return SyncEventResponse{
		ID:        e.ID,
		Operation: e.Operation,
		Outcome:   e.Outcome,
		Version:   e.Version,
		Message:   e.Message,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
