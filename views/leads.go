package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Leads renders the lead management page: search box, selection checkboxes
// with a select-all control, bulk delete, and per-row actions.
func Leads(v LeadsView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer

		fmt.Fprintf(&buf, "<div class=\"toolbar\"><span class=\"muted\">Total Leads: <strong>%d</strong></span>", v.Total)
		buf.WriteString("<button class=\"btn danger\" type=\"submit\" form=\"bulk\">Delete Selected</button></div>")

		buf.WriteString("<form method=\"get\" action=\"/leads/\" class=\"field\">")
		fmt.Fprintf(&buf, "<input type=\"text\" name=\"q\" value=\"%s\" placeholder=\"Search leads...\">", esc(v.Query))
		buf.WriteString("</form>")

		fmt.Fprintf(&buf, "<form id=\"bulk\" method=\"post\" action=\"/leads/delete/\" onsubmit=\"return confirm('Are you sure you want to delete selected leads?')\">")
		fmt.Fprintf(&buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">", esc(v.Csrf))
		buf.WriteString("<table><thead><tr>")
		buf.WriteString("<th><input type=\"checkbox\" onclick=\"document.querySelectorAll('input[name=ids]').forEach(cb=>cb.checked=this.checked)\"></th>")
		buf.WriteString("<th>Name</th><th>Email</th><th>Phone</th><th>Message</th><th>Date</th><th>Action</th></tr></thead><tbody>")
		if len(v.Rows) == 0 {
			buf.WriteString("<tr><td colspan=\"7\" class=\"muted\">No leads found.</td></tr>")
		}
		for _, lead := range v.Rows {
			buf.WriteString("<tr>")
			fmt.Fprintf(&buf, "<td><input type=\"checkbox\" name=\"ids\" value=\"%s\"></td>", esc(lead.ID))
			fmt.Fprintf(&buf, "<td><strong>%s</strong></td>", esc(lead.Name))
			fmt.Fprintf(&buf, "<td>%s</td><td>%s</td>", esc(lead.Email), esc(lead.Phone))
			fmt.Fprintf(&buf, "<td>%s</td>", esc(Snippet(lead.Message, 80)))
			fmt.Fprintf(&buf, "<td>%s</td>", esc(lead.CreatedAt))
			fmt.Fprintf(&buf, "<td><a href=\"/leads/%s/\">View</a></td>", esc(lead.ID))
			buf.WriteString("</tr>")
		}
		buf.WriteString("</tbody></table></form>")

		_, err := w.Write(buf.Bytes())
		return err
	})
}

// LeadDetail renders one lead in full, with its delete control.
func LeadDetail(lead LeadRow, csrf string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "<div class=\"toolbar\"><h1>%s</h1><a class=\"btn ghost\" href=\"/leads/\">Back</a></div>", esc(lead.Name))
		buf.WriteString("<table><tbody>")
		fmt.Fprintf(&buf, "<tr><th>Email</th><td>%s</td></tr>", esc(lead.Email))
		fmt.Fprintf(&buf, "<tr><th>Phone</th><td>%s</td></tr>", esc(lead.Phone))
		fmt.Fprintf(&buf, "<tr><th>Company</th><td>%s</td></tr>", esc(lead.Company))
		fmt.Fprintf(&buf, "<tr><th>Received</th><td>%s</td></tr>", esc(lead.CreatedAt))
		fmt.Fprintf(&buf, "<tr><th>Message</th><td>%s</td></tr>", esc(lead.Message))
		buf.WriteString("</tbody></table>")
		fmt.Fprintf(&buf,
			"<form method=\"post\" action=\"/leads/%s/delete/\" style=\"margin-top:16px\" onsubmit=\"return confirm('Are you sure you want to delete this lead?')\">"+
				"<input type=\"hidden\" name=\"_csrf\" value=\"%s\"><button class=\"btn danger\" type=\"submit\">Delete Lead</button></form>",
			esc(lead.ID), esc(csrf))
		_, err := w.Write(buf.Bytes())
		return err
	})
}
