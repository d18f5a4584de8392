package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Login renders the standalone login page. message, when non-empty, is a
// validation or backend failure surfaced above the form.
func Login(message, csrf string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		buf.WriteString("<title>Sign in · Backoffice</title>")
		buf.WriteString("<style>" + baseCSS + `
.login{max-width:380px;margin:12vh auto;background:#fff;border-radius:6px;padding:28px;box-shadow:0 2px 8px rgba(0,0,0,.1)}
.login h1{font-size:20px;margin:0 0 18px}` + "</style></head><body>")
		buf.WriteString("<div class=\"login\"><h1>Sign in</h1>")
		if message != "" {
			fmt.Fprintf(&buf, "<div class=\"notice error\">%s</div>", esc(message))
		}
		buf.WriteString("<form method=\"post\" action=\"/login/\">")
		fmt.Fprintf(&buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">", esc(csrf))
		buf.WriteString("<div class=\"field\"><label for=\"email\">Email</label><input id=\"email\" name=\"email\" type=\"email\" autocomplete=\"username\"></div>")
		buf.WriteString("<div class=\"field\"><label for=\"password\">Password</label><input id=\"password\" name=\"password\" type=\"password\" autocomplete=\"current-password\"></div>")
		buf.WriteString("<button class=\"btn\" type=\"submit\">Sign in</button>")
		buf.WriteString("</form></div></body></html>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}
