package notes

import (
	"strconv"
	"strings"
	"unicode"
)

// placeholderID is used when a title slugifies to nothing.
const placeholderID = "item"

// Slugify lowercases and trims s, drops everything except ASCII letters,
// digits, whitespace and hyphens, then turns whitespace runs and hyphen runs
// into single hyphens.
func Slugify(s string) string {
	s = strings.TrimFunc(strings.ToLower(s), unicode.IsSpace)

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep {
				b.WriteByte('-')
				pendingSep = false
			}
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingSep = true
		}
	}
	if pendingSep {
		b.WriteByte('-')
	}
	return b.String()
}

// GenerateID derives an id from title that is absent from existing.
// The base slug is tried first, then base-2, base-3 and so on.
func GenerateID(title string, existing map[string]struct{}) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = placeholderID
	}
	if _, taken := existing[base]; !taken {
		return base, nil
	}

	// At most len(existing) candidates can be taken, so one of the
	// len(existing)+1 suffixed candidates is always free.
	limit := len(existing) + 2
	for i := 2; i <= limit; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if _, taken := existing[candidate]; !taken {
			return candidate, nil
		}
	}
	return "", &ValidationError{Field: "id", Message: "cannot derive a unique id from " + strconv.Quote(title)}
}

func idSet[T any](items []T, id func(T) string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[id(item)] = struct{}{}
	}
	return set
}
