package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ContentPage renders one content entity's management view: the list table
// plus, while a form session is open, the create/edit panel.
func ContentPage(v ContentPageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer

		fmt.Fprintf(&buf, "<div class=\"toolbar\"><h1>%s Management</h1>", esc(v.Label))
		fmt.Fprintf(&buf, "<a class=\"btn\" href=\"%s/new/\">Add New %s</a></div>", v.BasePath, esc(v.Label))

		writeContentTable(&buf, v)

		if v.Form != nil {
			writeContentForm(&buf, v)
		}

		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeContentTable(buf *bytes.Buffer, v ContentPageView) {
	buf.WriteString("<table><thead><tr><th>Title</th><th>Excerpt</th><th>Status</th><th>Created</th><th>SEO</th><th>Actions</th></tr></thead><tbody>")
	if len(v.Rows) == 0 {
		fmt.Fprintf(buf, "<tr><td colspan=\"6\" class=\"muted\">No %s found.</td></tr>", esc(v.Plural))
	}
	for _, row := range v.Rows {
		buf.WriteString("<tr>")
		fmt.Fprintf(buf, "<td><strong>%s</strong><br><span class=\"muted\">%s</span></td>", esc(row.Title), esc(row.TitleURL))
		fmt.Fprintf(buf, "<td>%s</td>", esc(row.Snippet))
		fmt.Fprintf(buf, "<td>%s</td>", esc(row.Status))
		fmt.Fprintf(buf, "<td>%s</td>", esc(row.CreatedAt))

		buf.WriteString("<td>")
		if row.HasSEO {
			buf.WriteString("<span class=\"badge on\">Done</span> ")
			fmt.Fprintf(buf,
				"<form method=\"post\" action=\"%s/seo/%s/delete/\" style=\"display:inline\" onsubmit=\"return confirm('Remove the SEO profile from this item?')\">"+
					"<input type=\"hidden\" name=\"_csrf\" value=\"%s\"><button class=\"btn ghost\" type=\"submit\">Unlink</button></form>",
				v.BasePath, esc(row.SEOID), esc(v.Csrf))
		} else {
			buf.WriteString("<span class=\"badge off\">Pending</span>")
		}
		buf.WriteString("</td>")

		buf.WriteString("<td>")
		fmt.Fprintf(buf, "<a href=\"%s/%s/edit/\">Edit</a> ", v.BasePath, esc(row.ID))
		fmt.Fprintf(buf,
			"<form method=\"post\" action=\"%s/%s/delete/\" style=\"display:inline\" onsubmit=\"return confirm('Are you sure you want to delete this %s?')\">"+
				"<input type=\"hidden\" name=\"_csrf\" value=\"%s\"><button class=\"btn danger\" type=\"submit\">Delete</button></form>",
			v.BasePath, esc(row.ID), esc(v.Label), esc(v.Csrf))
		buf.WriteString("</td></tr>")
	}
	buf.WriteString("</tbody></table>")
}

func writeContentForm(buf *bytes.Buffer, v ContentPageView) {
	f := v.Form
	heading := "Add New " + v.Label
	if f.EditingID != "" {
		heading = "Edit " + v.Label
	}

	buf.WriteString("<div class=\"modal\"><div class=\"panel\">")
	fmt.Fprintf(buf, "<h2>%s</h2>", esc(heading))

	fmt.Fprintf(buf, "<form method=\"post\" action=\"%s/save/\" enctype=\"multipart/form-data\">", v.BasePath)
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">", esc(v.Csrf))
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"form\" value=\"%s\">", esc(f.Key))

	for _, field := range f.Fields {
		required := ""
		if field.Required {
			required = " *"
		}
		fmt.Fprintf(buf, "<div class=\"field\"><label for=\"%s\">%s%s</label>", esc(field.Name), esc(field.Label), required)
		fmt.Fprintf(buf, "<input id=\"%s\" type=\"text\" name=\"%s\" value=\"%s\"></div>", esc(field.Name), esc(field.Name), esc(field.Value))
	}

	for _, file := range f.Files {
		fmt.Fprintf(buf, "<div class=\"field\"><label for=\"%s\">%s <span class=\"muted\">Max size: 6MB</span></label>", esc(file.Name), esc(file.Label))
		fmt.Fprintf(buf, "<input id=\"%s\" type=\"file\" name=\"%s\" accept=\"image/*\">", esc(file.Name), esc(file.Name))
		if file.Preview != "" {
			fmt.Fprintf(buf, "<img class=\"preview\" src=\"%s\" alt=\"%s preview\">", esc(file.Preview), esc(file.Label))
		}
		buf.WriteString("</div>")
	}

	fmt.Fprintf(buf, "<div class=\"field\"><label for=\"%s\">%s *</label>", esc(f.Body.Name), esc(f.Body.Label))
	fmt.Fprintf(buf, "<textarea id=\"%s\" name=\"%s\">%s</textarea></div>", esc(f.Body.Name), esc(f.Body.Name), esc(f.Body.Value))

	disabled := ""
	if f.Submitting {
		disabled = " disabled"
	}
	fmt.Fprintf(buf, "<button class=\"btn ghost\" type=\"submit\" formaction=\"%s/cancel/\" formnovalidate>Cancel</button> ", v.BasePath)
	verb := "Create"
	if f.EditingID != "" {
		verb = "Update"
	}
	fmt.Fprintf(buf, "<button class=\"btn\" type=\"submit\"%s>%s %s</button>", disabled, verb, esc(v.Label))
	buf.WriteString("</form></div></div>")
}
