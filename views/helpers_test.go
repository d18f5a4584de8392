package views

import (
	"strings"
	"testing"
)

func TestSafeHTMLStripsScript(t *testing.T) {
	in := `<p>Hello</p><script>alert("xss")</script>`
	out := SafeHTML(in)
	if strings.Contains(out, "script") {
		t.Errorf("SafeHTML(%q) = %q, script must be stripped", in, out)
	}
	if !strings.Contains(out, "<p>Hello</p>") {
		t.Errorf("SafeHTML(%q) = %q, harmless formatting should survive", in, out)
	}
}

func TestSafeHTMLStripsEventHandlers(t *testing.T) {
	out := SafeHTML(`<a href="https://example.com" onclick="steal()">link</a>`)
	if strings.Contains(out, "onclick") {
		t.Errorf("SafeHTML = %q, event handlers must be stripped", out)
	}
}

func TestSnippetStripsMarkup(t *testing.T) {
	got := Snippet("<h1>Title</h1><p>Some <b>bold</b> text</p>", 120)
	if strings.ContainsAny(got, "<>") {
		t.Errorf("Snippet = %q, markup must be gone", got)
	}
	if !strings.Contains(got, "bold") {
		t.Errorf("Snippet = %q, text content should survive", got)
	}
}

func TestSnippetCollapsesWhitespace(t *testing.T) {
	got := Snippet("<p>one</p>\n\n  <p>two</p>", 120)
	if strings.Contains(got, "\n") || strings.Contains(got, "  ") {
		t.Errorf("Snippet = %q, whitespace should collapse", got)
	}
}

func TestSnippetTruncates(t *testing.T) {
	got := Snippet(strings.Repeat("word ", 100), 20)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Snippet = %q, want ellipsis suffix", got)
	}
	if len([]rune(got)) != 21 {
		t.Errorf("Snippet rune length = %d, want 21", len([]rune(got)))
	}
}

func TestSnippetShortBodyUntouched(t *testing.T) {
	if got := Snippet("short", 120); got != "short" {
		t.Errorf("Snippet = %q, want short", got)
	}
}
