// Package htmlsanitize cleans user-supplied HTML before it is stored.
package htmlsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	rich   *bluemonday.Policy
	strict *bluemonday.Policy
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	once.Do(func() {
		rich = bluemonday.UGCPolicy()
		rich.AllowElements("u", "s", "mark")
		rich.AllowAttrs("class").OnElements("table", "tr", "td", "th")
		strict = bluemonday.StrictPolicy()
	})
	return rich, strict
}

// Sanitize keeps formatting (paragraphs, lists, tables, links, code) and
// removes scripts, event handlers, iframes, and javascript: URLs.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	p, _ := policies()
	return strings.TrimSpace(p.Sanitize(s))
}

// StripTags removes all markup, for fields shown as plain text.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	_, p := policies()
	return strings.TrimSpace(p.Sanitize(s))
}

// IsPlainText reports whether s contains nothing that looks like a tag.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}
