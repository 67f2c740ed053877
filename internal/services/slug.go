package services

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashRuns     = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL slug from a human title: lowercase, spaces to
// hyphens, everything else stripped. It never invents uniqueness — a
// colliding slug is the caller's DuplicateSlug error, not a suffixed rename.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugDashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
