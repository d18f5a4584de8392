package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func statusPage(code int, heading, detail string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		fmt.Fprintf(&buf, "<title>%d · Backoffice</title>", code)
		buf.WriteString("<style>" + baseCSS + "</style></head><body>")
		fmt.Fprintf(&buf, "<div class=\"content\" style=\"margin:10vh auto;max-width:480px;text-align:center\"><h1>%s</h1><p class=\"muted\">%s</p>", esc(heading), esc(detail))
		buf.WriteString("<a class=\"btn\" href=\"/blogs/\">Back to console</a></div></body></html>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// NotFound renders the styled 404 page.
func NotFound() templ.Component {
	return statusPage(404, "Page not found", "The page you were looking for does not exist.")
}

// ServerError renders the styled 500 page.
func ServerError() templ.Component {
	return statusPage(500, "Something went wrong", "An unexpected error occurred. Try again.")
}
