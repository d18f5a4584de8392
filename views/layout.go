package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

var navTabs = []struct {
	Label string
	Path  string
	Key   string
}{
	{"Blogs", "/blogs/", "blog"},
	{"Services", "/services/", "service"},
	{"Leads", "/leads/", "lead"},
	{"SEO", "/seo/", "seo"},
	{"Activity", "/activity/", "activity"},
}

const baseCSS = `
body{margin:0;font-family:system-ui,sans-serif;background:#f4f5f7;color:#1f2430}
a{color:#2456c8;text-decoration:none}
.shell{display:flex;min-height:100vh}
.sidebar{width:200px;background:#1f2430;color:#fff;padding:16px 0;flex-shrink:0}
.sidebar h1{font-size:16px;padding:0 20px 16px;margin:0;border-bottom:1px solid #3a4050}
.sidebar a{display:block;padding:10px 20px;color:#c9cede}
.sidebar a.active{background:#2456c8;color:#fff}
.sidebar form{padding:16px 20px}
.content{flex:1;padding:24px;max-width:1100px}
table{width:100%;border-collapse:collapse;background:#fff;box-shadow:0 1px 2px rgba(0,0,0,.08)}
th,td{padding:8px 12px;border-bottom:1px solid #e4e6eb;text-align:left;font-size:14px;vertical-align:top}
th{background:#eceef2;font-weight:600}
.notice{padding:10px 14px;border-radius:4px;margin-bottom:12px;font-size:14px}
.notice.success{background:#e3f4e6;color:#1d6b2c}
.notice.error{background:#fbe4e4;color:#9c2121}
.btn{display:inline-block;padding:8px 14px;border:0;border-radius:4px;background:#2456c8;color:#fff;cursor:pointer;font-size:14px}
.btn.danger{background:#c0392b}
.btn.ghost{background:#e4e6eb;color:#1f2430}
.btn[disabled]{opacity:.5}
.modal{position:fixed;inset:0;background:rgba(20,24,32,.55);display:flex;align-items:flex-start;justify-content:center;padding:32px;overflow-y:auto}
.panel{background:#fff;border-radius:6px;padding:24px;width:100%;max-width:760px}
.field{margin-bottom:14px}
.field label{display:block;font-size:13px;font-weight:600;margin-bottom:4px}
.field input[type=text],.field input[type=email],.field input[type=password],.field input[type=url],.field textarea,.field select{width:100%;padding:8px;border:1px solid #c6cad3;border-radius:4px;font-size:14px;box-sizing:border-box}
.field textarea{min-height:140px;font-family:inherit}
.preview{max-height:80px;border-radius:4px;display:block;margin-top:6px}
.badge{display:inline-block;padding:2px 8px;border-radius:10px;font-size:12px}
.badge.on{background:#e3f4e6;color:#1d6b2c}
.badge.off{background:#fdf3dc;color:#8a6d1a}
.toolbar{display:flex;justify-content:space-between;align-items:center;margin-bottom:16px}
.muted{color:#7a8194;font-size:13px}
`

// Layout wraps a page body in the console shell: sidebar navigation, queued
// notices, and the logout control.
func Layout(title, active, csrf string, notices []Notice, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		fmt.Fprintf(&buf, "<title>%s · Backoffice</title>", esc(title))
		buf.WriteString("<style>" + baseCSS + "</style></head><body><div class=\"shell\">")

		buf.WriteString("<nav class=\"sidebar\"><h1>Backoffice</h1>")
		for _, tab := range navTabs {
			class := ""
			if tab.Key == active {
				class = " class=\"active\""
			}
			fmt.Fprintf(&buf, "<a href=\"%s\"%s>%s</a>", tab.Path, class, tab.Label)
		}
		fmt.Fprintf(&buf, "<form method=\"post\" action=\"/logout/\"><input type=\"hidden\" name=\"_csrf\" value=\"%s\"><button class=\"btn ghost\" type=\"submit\">Log out</button></form>", esc(csrf))
		buf.WriteString("</nav><main class=\"content\">")

		writeNotices(&buf, notices)

		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</main></div></body></html>")
		return err
	})
}

func writeNotices(buf *bytes.Buffer, notices []Notice) {
	for _, n := range notices {
		kind := "success"
		if n.Kind == "error" {
			kind = "error"
		}
		fmt.Fprintf(buf, "<div class=\"notice %s\">%s</div>", kind, esc(n.Message))
	}
}
