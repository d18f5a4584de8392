package views

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// Content bodies arrive from the backend as rich-text HTML. They are never
// rendered raw: ugcPolicy keeps harmless formatting for previews, strict
// strips everything for table snippets.
var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// SafeHTML sanitizes a rich-text body for inline rendering.
func SafeHTML(body string) string {
	return ugcPolicy.Sanitize(body)
}

// Snippet strips all markup from a body and truncates it for table cells.
func Snippet(body string, max int) string {
	text := strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(body)))
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max]) + "…"
}

func esc(s string) string {
	return html.EscapeString(s)
}
