// Package notes holds the in-memory document model: sections, notes and the
// collection that owns them.
package notes

import "time"

const (
	// HomeID is the reserved id of the note that always exists.
	HomeID = "home"
	// HomeLabel is the breadcrumb shown for the home note.
	HomeLabel = "Home"
	// DefaultSiteTitle is used when the site title is cleared.
	DefaultSiteTitle = "Study Notes"
	// DefaultBranch is the remote branch used when none is configured.
	DefaultBranch = "gh-pages"
	// DefaultPath is the remote object path used when none is configured.
	DefaultPath = "data/notes.json"
	// UntitledLabel is the breadcrumb placeholder for a missing note.
	UntitledLabel = "Untitled"

	fallbackSectionTitle = "General"
)

// Note is an addressable unit of rich-text content.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	// UpdatedAt is a unix timestamp in milliseconds.
	UpdatedAt int64 `json:"updatedAt"`
}

// IsHome reports whether the note is the reserved home note.
func (n Note) IsHome() bool {
	return IsHome(n.ID)
}

// Updated returns UpdatedAt as a time.Time.
func (n Note) Updated() time.Time {
	return time.UnixMilli(n.UpdatedAt)
}

// Section is a named, ordered grouping of note references.
type Section struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Notes []string `json:"notes"`
}

// Contains reports whether the section references noteID.
func (s Section) Contains(noteID string) bool {
	for _, id := range s.Notes {
		if id == noteID {
			return true
		}
	}
	return false
}

// RemoteConfig addresses the remote blob and carries the credential used to
// reach it. SHA is the last version token observed on the remote.
type RemoteConfig struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Branch string `json:"branch"`
	Path   string `json:"path"`
	Token  string `json:"token"`
	SHA    string `json:"sha,omitempty"`
}

// Configured reports whether enough of the address is set to reach a remote.
func (r RemoteConfig) Configured() bool {
	return r.Owner != "" && r.Repo != ""
}

// Collection is the root document. Sections and notes have no identity outside of it.
type Collection struct {
	SiteTitle      string          `json:"siteTitle"`
	Sections       []Section       `json:"sections"`
	Notes          map[string]Note `json:"notes"`
	SelectedNoteID string          `json:"selectedNoteId"`
	Remote         RemoteConfig    `json:"github"`
}

// IsHome reports whether id is the reserved home note id.
func IsHome(id string) bool {
	return id == HomeID
}
