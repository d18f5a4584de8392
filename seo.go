package backoffice

import (
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/mkarell/backoffice/backend"
	"github.com/mkarell/backoffice/views"
)

// OwnerKind discriminates which content type an SEO profile attaches to.
type OwnerKind int

const (
	OwnerNone OwnerKind = iota
	OwnerBlog
	OwnerService
)

// Owner identifies the single content item an SEO profile belongs to. The
// picker encodes it as "blog:<id>" or "service:<id>", which makes choosing
// one kind deselect the other by construction.
type Owner struct {
	Kind OwnerKind
	ID   string
}

// ParseOwner decodes a picker value. Anything malformed or empty comes
// back as OwnerNone.
func ParseOwner(v string) Owner {
	kind, id, ok := strings.Cut(v, ":")
	if !ok || id == "" {
		return Owner{}
	}
	switch kind {
	case "blog":
		return Owner{Kind: OwnerBlog, ID: id}
	case "service":
		return Owner{Kind: OwnerService, ID: id}
	}
	return Owner{}
}

// createPath returns the backend endpoint for this owner kind.
func (o Owner) createPath() string {
	if o.Kind == OwnerService {
		return "/SeoRouter/CreateSeoFormService"
	}
	return "/SeoRouter/CreateSeoFormBlog"
}

// seoPayload is the profile bag plus exactly one owning id.
type seoPayload struct {
	backend.SEOProfile
	BlogID    string `json:"blog_id,omitempty"`
	ServiceID string `json:"service_id,omitempty"`
}

func (a *App) handleSEOPage(c echo.Context) error {
	cred := backendCred(c)
	a.ensureLoaded(c, a.blogEntity, cred)
	a.ensureLoaded(c, a.serviceEntity, cred)

	var owners []views.OwnerOption
	for _, item := range a.blogs.Items() {
		owners = append(owners, views.OwnerOption{
			Value: "blog:" + item.ID,
			Label: item.Title,
			Group: "Blogs",
		})
	}
	for _, item := range a.services.Items() {
		owners = append(owners, views.OwnerOption{
			Value: "service:" + item.ID,
			Label: item.Title,
			Group: "Services",
		})
	}

	view := views.SEOView{Owners: owners, Csrf: CsrfToken(c)}
	return Render(c, views.Layout("SEO Management", "seo", CsrfToken(c), PopNotices(c), views.SEOPage(view)))
}

func (a *App) handleSEOSave(c echo.Context) error {
	owner := ParseOwner(c.FormValue("owner"))
	if owner.Kind == OwnerNone {
		FlashError(c, "Please select a content item before submitting!")
		return c.Redirect(http.StatusSeeOther, "/seo/")
	}

	profile := backend.SEOProfile{
		PageTitle:        c.FormValue("page_title"),
		MetaDescription:  c.FormValue("metaDes"),
		MetaKeywords:     c.FormValue("metaKeywords"),
		CanonicalURL:     c.FormValue("cannicalUrl"),
		OGTitle:          c.FormValue("ogTitle"),
		OGDescription:    c.FormValue("ogDes"),
		OGImageURL:       c.FormValue("OgImageUrl"),
		OGType:           c.FormValue("OgType"),
		RobotsMeta:       c.FormValue("robotsMeta"),
		SchemaMarkup:     c.FormValue("schemaMaprkup"),
		Copyright:        c.FormValue("copyright") == "true",
		SiteVerification: c.FormValue("googleSiteVerification") == "true",
	}
	err := validation.Errors{
		"Meta Title":       validation.Validate(profile.PageTitle, validation.Required),
		"Meta Description": validation.Validate(profile.MetaDescription, validation.Required),
	}.Filter()
	if err != nil {
		FlashError(c, err.Error())
		return c.Redirect(http.StatusSeeOther, "/seo/")
	}

	payload := seoPayload{SEOProfile: profile}
	ent := a.blogEntity
	if owner.Kind == OwnerService {
		ent = a.serviceEntity
		payload.ServiceID = owner.ID
	} else {
		payload.BlogID = owner.ID
	}

	msg, err := a.Backend.CreateSEO(c.Request().Context(), backendCred(c), owner.createPath(), payload)
	if err != nil {
		FlashError(c, apiMessage(err, "Failed to save the SEO profile."))
		return c.Redirect(http.StatusSeeOther, "/seo/")
	}

	// The listings embed the linked profile, so refetch instead of guessing
	// at the new state.
	ent.snapshot.Invalidate()
	a.record("link-seo", ent.name, owner.ID, profile.PageTitle)
	if msg == "" {
		msg = "SEO linked successfully!"
	}
	Flash(c, msg)
	return c.Redirect(http.StatusSeeOther, "/seo/")
}
