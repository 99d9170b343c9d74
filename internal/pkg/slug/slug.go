// Package slug turns post titles into URL-safe identifiers.
package slug

import (
	"regexp"
	"strings"
)

var (
	// Word characters are Unicode-wide: accented letters stay in the
	// slug, only punctuation and symbols are removed.
	invalidChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	separators   = regexp.MustCompile(`[-\s]+`)
)

// Make derives a lowercase, hyphen-separated slug from a title.
// It is idempotent: Make(Make(t)) == Make(t). Colliding titles produce
// colliding slugs; no uniqueness suffix is appended.
func Make(title string) string {
	s := strings.ToLower(title)
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
