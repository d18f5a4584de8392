package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

var ogTypes = []string{"website", "article", "product"}

var robotsOptions = []string{
	"index, follow",
	"noindex, follow",
	"index, nofollow",
	"noindex, nofollow",
}

// SEOPage renders the SEO linking form: one owner picker over both content
// collections plus the flat metadata bag. The single grouped select is what
// makes picking a blog and a service at the same time impossible.
func SEOPage(v SEOView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer

		buf.WriteString("<div class=\"toolbar\"><div><h1>SEO Management</h1>")
		buf.WriteString("<p class=\"muted\">Optimize your content for search engines</p></div></div>")

		buf.WriteString("<form method=\"post\" action=\"/seo/save/\">")
		fmt.Fprintf(&buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">", esc(v.Csrf))

		buf.WriteString("<div class=\"field\"><label for=\"owner\">Content Item *</label><select id=\"owner\" name=\"owner\">")
		buf.WriteString("<option value=\"\">Select</option>")
		writeOwnerGroup(&buf, "Blogs", v.Owners)
		writeOwnerGroup(&buf, "Services", v.Owners)
		buf.WriteString("</select></div>")

		writeTextField(&buf, "page_title", "Meta Title *", "Enter meta title (50-60 chars)", 60)
		writeTextArea(&buf, "metaDes", "Meta Description *", "Enter meta description (150-160 chars)", 160)
		writeTextField(&buf, "metaKeywords", "Meta Keywords", "keyword1, keyword2", 0)
		writeTextField(&buf, "cannicalUrl", "Canonical URL", "https://example.com/page", 0)

		writeTextField(&buf, "ogTitle", "OG Title", "Share title", 0)
		writeTextArea(&buf, "ogDes", "OG Description", "Share description", 0)
		writeTextField(&buf, "OgImageUrl", "OG Image URL", "https://example.com/image.jpg", 0)
		writeSelect(&buf, "OgType", "OG Type", ogTypes)

		writeSelect(&buf, "robotsMeta", "Robots Meta", robotsOptions)
		writeTextArea(&buf, "schemaMaprkup", "Schema Markup", "Paste your JSON-LD schema markup here", 0)

		writeCheckbox(&buf, "copyright", "Copyright")
		writeCheckbox(&buf, "googleSiteVerification", "Google Site Verification")

		buf.WriteString("<button class=\"btn\" type=\"submit\">Save SEO Settings</button></form>")

		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeOwnerGroup(buf *bytes.Buffer, group string, owners []OwnerOption) {
	fmt.Fprintf(buf, "<optgroup label=\"%s\">", esc(group))
	for _, o := range owners {
		if o.Group != group {
			continue
		}
		fmt.Fprintf(buf, "<option value=\"%s\">%s</option>", esc(o.Value), esc(o.Label))
	}
	buf.WriteString("</optgroup>")
}

func writeTextField(buf *bytes.Buffer, name, label, placeholder string, maxLen int) {
	fmt.Fprintf(buf, "<div class=\"field\"><label for=\"%s\">%s</label>", esc(name), esc(label))
	fmt.Fprintf(buf, "<input id=\"%s\" type=\"text\" name=\"%s\" placeholder=\"%s\"", esc(name), esc(name), esc(placeholder))
	if maxLen > 0 {
		fmt.Fprintf(buf, " maxlength=\"%d\"", maxLen)
	}
	buf.WriteString("></div>")
}

func writeTextArea(buf *bytes.Buffer, name, label, placeholder string, maxLen int) {
	fmt.Fprintf(buf, "<div class=\"field\"><label for=\"%s\">%s</label>", esc(name), esc(label))
	fmt.Fprintf(buf, "<textarea id=\"%s\" name=\"%s\" placeholder=\"%s\"", esc(name), esc(name), esc(placeholder))
	if maxLen > 0 {
		fmt.Fprintf(buf, " maxlength=\"%d\"", maxLen)
	}
	buf.WriteString("></textarea></div>")
}

func writeSelect(buf *bytes.Buffer, name, label string, options []string) {
	fmt.Fprintf(buf, "<div class=\"field\"><label for=\"%s\">%s</label><select id=\"%s\" name=\"%s\">", esc(name), esc(label), esc(name), esc(name))
	for _, opt := range options {
		fmt.Fprintf(buf, "<option value=\"%s\">%s</option>", esc(opt), esc(opt))
	}
	buf.WriteString("</select></div>")
}

func writeCheckbox(buf *bytes.Buffer, name, label string) {
	fmt.Fprintf(buf, "<div class=\"field\"><label><input type=\"checkbox\" name=\"%s\" value=\"true\"> %s</label></div>", esc(name), esc(label))
}
