package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Activity renders the console's local operation log.
func Activity(events []EventRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<div class=\"toolbar\"><h1>Activity</h1></div>")
		buf.WriteString("<table><thead><tr><th>When</th><th>Action</th><th>Entity</th><th>Detail</th></tr></thead><tbody>")
		if len(events) == 0 {
			buf.WriteString("<tr><td colspan=\"4\" class=\"muted\">No activity recorded yet.</td></tr>")
		}
		for _, e := range events {
			buf.WriteString("<tr>")
			fmt.Fprintf(&buf, "<td>%s</td>", esc(e.At))
			fmt.Fprintf(&buf, "<td>%s</td>", esc(e.Action))
			fmt.Fprintf(&buf, "<td>%s <span class=\"muted\">%s</span></td>", esc(e.Entity), esc(e.EntityID))
			fmt.Fprintf(&buf, "<td>%s</td>", esc(e.Detail))
			buf.WriteString("</tr>")
		}
		buf.WriteString("</tbody></table>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}
