package notes

import (
	"html"
	"strings"
	"time"
)

// Clone returns a deep copy of the collection.
func (c *Collection) Clone() *Collection {
	out := *c
	out.Sections = make([]Section, len(c.Sections))
	for i, s := range c.Sections {
		s.Notes = append([]string(nil), s.Notes...)
		if s.Notes == nil {
			s.Notes = []string{}
		}
		out.Sections[i] = s
	}
	out.Notes = make(map[string]Note, len(c.Notes))
	for id, n := range c.Notes {
		out.Notes[id] = n
	}
	return &out
}

// Normalize repairs a loaded collection. Afterwards the home note exists, the
// selection references an existing note and the remote address has a branch
// and path.
func (c *Collection) Normalize() {
	if c.Notes == nil {
		c.Notes = make(map[string]Note)
	}
	if _, ok := c.Notes[HomeID]; !ok {
		c.Notes[HomeID] = defaultHome(time.Now())
	}
	for id, n := range c.Notes {
		if n.ID == "" {
			n.ID = id
			c.Notes[id] = n
		}
	}
	if c.Sections == nil {
		c.Sections = []Section{}
	}
	for i := range c.Sections {
		if c.Sections[i].Notes == nil {
			c.Sections[i].Notes = []string{}
		}
	}
	if _, ok := c.Notes[c.SelectedNoteID]; !ok {
		c.SelectedNoteID = HomeID
	}
	if c.SiteTitle == "" {
		c.SiteTitle = DefaultSiteTitle
	}
	if c.Remote.Branch == "" {
		c.Remote.Branch = DefaultBranch
	}
	if c.Remote.Path == "" {
		c.Remote.Path = DefaultPath
	}
}

// Section returns the section with the given id.
func (c *Collection) Section(id string) (Section, bool) {
	i := c.sectionIndex(id)
	if i < 0 {
		return Section{}, false
	}
	return c.Sections[i], true
}

// Note returns the note with the given id.
func (c *Collection) Note(id string) (Note, bool) {
	n, ok := c.Notes[id]
	return n, ok
}

// CreateSection appends a new empty section.
func (c *Collection) CreateSection(title string) (Section, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Section{}, &ValidationError{Field: "title", Message: "cannot be empty"}
	}
	id, err := GenerateID(title, c.sectionIDs())
	if err != nil {
		return Section{}, err
	}
	s := Section{ID: id, Title: title, Notes: []string{}}
	c.Sections = append(c.Sections, s)
	return s, nil
}

// RenameSection changes a section's title. The id is kept.
func (c *Collection) RenameSection(id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return &ValidationError{Field: "title", Message: "cannot be empty"}
	}
	i := c.sectionIndex(id)
	if i < 0 {
		return notFound("section", id)
	}
	c.Sections[i].Title = title
	return nil
}

// DeleteSection removes a section from the list. The notes it referenced stay
// in the collection and remain reachable by id.
func (c *Collection) DeleteSection(id string) error {
	i := c.sectionIndex(id)
	if i < 0 {
		return notFound("section", id)
	}
	c.Sections = append(c.Sections[:i], c.Sections[i+1:]...)
	return nil
}

// CreateNote adds a note and links it into a section, then selects it.
// An empty sectionID picks the section holding the selected note, then the
// first section, then a new "General" section.
func (c *Collection) CreateNote(title, sectionID string, now time.Time) (Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Note{}, &ValidationError{Field: "title", Message: "cannot be empty"}
	}

	target, err := c.targetSection(sectionID)
	if err != nil {
		return Note{}, err
	}

	existing := make(map[string]struct{}, len(c.Notes))
	for id := range c.Notes {
		existing[id] = struct{}{}
	}
	id, err := GenerateID(title, existing)
	if err != nil {
		return Note{}, err
	}

	n := Note{
		ID:        id,
		Title:     title,
		Content:   "<h1>" + html.EscapeString(title) + "</h1>",
		UpdatedAt: now.UnixMilli(),
	}
	if target < 0 {
		fallback, err := c.CreateSection(fallbackSectionTitle)
		if err != nil {
			return Note{}, err
		}
		target = c.sectionIndex(fallback.ID)
	}
	c.Notes[id] = n
	c.Sections[target].Notes = append(c.Sections[target].Notes, id)
	c.SelectedNoteID = id
	return n, nil
}

// RenameNote changes a note's title. The home note's title is fixed; use
// SetSiteTitle instead.
func (c *Collection) RenameNote(id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return &ValidationError{Field: "title", Message: "cannot be empty"}
	}
	if IsHome(id) {
		return &ValidationError{Field: "id", Message: "the home note cannot be renamed"}
	}
	n, ok := c.Notes[id]
	if !ok {
		return notFound("note", id)
	}
	n.Title = title
	c.Notes[id] = n
	return nil
}

// SetNoteContent replaces a note's content and stamps UpdatedAt.
func (c *Collection) SetNoteContent(id, content string, now time.Time) error {
	n, ok := c.Notes[id]
	if !ok {
		return notFound("note", id)
	}
	n.Content = content
	n.UpdatedAt = now.UnixMilli()
	c.Notes[id] = n
	return nil
}

// DeleteNote removes a note and every section reference to it.
func (c *Collection) DeleteNote(id string) error {
	if IsHome(id) {
		return &ValidationError{Field: "id", Message: "the home note cannot be deleted"}
	}
	if _, ok := c.Notes[id]; !ok {
		return notFound("note", id)
	}
	for i := range c.Sections {
		kept := c.Sections[i].Notes[:0]
		for _, ref := range c.Sections[i].Notes {
			if ref != id {
				kept = append(kept, ref)
			}
		}
		c.Sections[i].Notes = kept
	}
	delete(c.Notes, id)
	if c.SelectedNoteID == id {
		c.SelectedNoteID = HomeID
	}
	return nil
}

// SetSiteTitle renames the site. An empty title restores the default.
func (c *Collection) SetSiteTitle(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultSiteTitle
	}
	c.SiteTitle = title
}

// Select makes id the selected note, falling back to home when id does not
// exist. It returns the id that ended up selected.
func (c *Collection) Select(id string) string {
	if _, ok := c.Notes[id]; !ok {
		id = HomeID
	}
	c.SelectedNoteID = id
	return id
}

// Breadcrumb renders the navigation label for a note.
func (c *Collection) Breadcrumb(noteID string) string {
	if IsHome(noteID) {
		return HomeLabel
	}
	title := UntitledLabel
	if n, ok := c.Notes[noteID]; ok {
		title = n.Title
	}
	for _, s := range c.Sections {
		if s.Contains(noteID) {
			return s.Title + " / " + title
		}
	}
	return title
}

// targetSection resolves the section a new note is linked into.
// It returns -1 when no section exists yet.
func (c *Collection) targetSection(sectionID string) (int, error) {
	if sectionID != "" {
		i := c.sectionIndex(sectionID)
		if i < 0 {
			return -1, notFound("section", sectionID)
		}
		return i, nil
	}
	for i, s := range c.Sections {
		if s.Contains(c.SelectedNoteID) {
			return i, nil
		}
	}
	if len(c.Sections) > 0 {
		return 0, nil
	}
	return -1, nil
}

func (c *Collection) sectionIndex(id string) int {
	for i, s := range c.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (c *Collection) sectionIDs() map[string]struct{} {
	return idSet(c.Sections, func(s Section) string { return s.ID })
}
