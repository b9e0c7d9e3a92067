// Package htmlsanitize cleans user-authored HTML before it is stored.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// ugc allows the formatting a blog editor produces (paragraphs, lists,
	// headings, links, images, code) and strips scripts, event handlers and
	// unsafe URL schemes.
	ugc = bluemonday.UGCPolicy()

	// strict removes every tag.
	strict = bluemonday.StrictPolicy()
)

// Sanitize returns s with unsafe markup removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugc.Sanitize(s)
}

// StripTags removes all markup and trims the result. Used for single-line
// fields such as titles, which clients render as text, so entities the
// policy escapes are decoded again.
func StripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
