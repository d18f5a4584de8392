package backoffice

import (
	"context"
	"errors"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/mkarell/backoffice/backend"
	"github.com/mkarell/backoffice/views"
)

// fieldSpec describes one form input by its backend wire name.
type fieldSpec struct {
	Name     string
	Label    string
	Required bool
}

// contentEntity describes one managed content type. Blogs and services
// share every handler; only the descriptor differs.
type contentEntity struct {
	name     string // "blog"
	label    string // "Blog"
	plural   string // "blogs"
	basePath string // "/blogs"

	titleField string
	slugField  string
	bodyField  string
	bodyLabel  string
	fields     []fieldSpec // ordered text inputs
	files      []fieldSpec // ordered attachment inputs

	snapshot *Snapshot[backend.ContentItem]

	list       func(ctx context.Context, cred string) ([]backend.ContentItem, error)
	save       func(ctx context.Context, cred, id string, fields map[string]string, files []backend.Attachment) (backend.ContentItem, error)
	deletePath func(id string) string
}

func (a *App) newBlogEntity() *contentEntity {
	return &contentEntity{
		name:       "blog",
		label:      "Blog",
		plural:     "blogs",
		basePath:   "/blogs",
		titleField: "blog_title",
		slugField:  "blog_title_url",
		bodyField:  "blog_content",
		bodyLabel:  "Blog Content",
		fields: []fieldSpec{
			{Name: "blog_title", Label: "Blog Title", Required: true},
			{Name: "blog_title_url", Label: "Blog Title URL"},
		},
		files: []fieldSpec{
			{Name: "small_image", Label: "Small Image"},
			{Name: "large_image", Label: "Large Image"},
			{Name: "banner", Label: "Banner"},
		},
		snapshot: a.blogs,
		list: func(ctx context.Context, cred string) ([]backend.ContentItem, error) {
			blogs, err := a.Backend.ListBlogs(ctx, cred)
			if err != nil {
				return nil, err
			}
			items := make([]backend.ContentItem, 0, len(blogs))
			for _, b := range blogs {
				items = append(items, b.Item())
			}
			return items, nil
		},
		save: func(ctx context.Context, cred, id string, fields map[string]string, files []backend.Attachment) (backend.ContentItem, error) {
			method, path := http.MethodPost, "/blogs"
			if id != "" {
				method, path = http.MethodPut, "/blogs/"+id
			}
			b, err := backend.SubmitForm[backend.Blog](ctx, a.Backend, cred, method, path, fields, files)
			if err != nil {
				return backend.ContentItem{}, err
			}
			return b.Item(), nil
		},
		deletePath: func(id string) string { return "/blogs/deleteBlog/" + id },
	}
}

func (a *App) newServiceEntity() *contentEntity {
	return &contentEntity{
		name:       "service",
		label:      "Service",
		plural:     "services",
		basePath:   "/services",
		titleField: "service_title",
		slugField:  "service_title_url",
		bodyField:  "service_content",
		bodyLabel:  "Service Content",
		fields: []fieldSpec{
			{Name: "service_title", Label: "Service Title", Required: true},
			{Name: "service_title_url", Label: "Service Title URL"},
		},
		files: []fieldSpec{
			{Name: "small_image", Label: "Small Image"},
			{Name: "large_image", Label: "Large Image"},
			{Name: "side_image", Label: "Side Image"},
		},
		snapshot: a.services,
		list: func(ctx context.Context, cred string) ([]backend.ContentItem, error) {
			svcs, err := a.Backend.ListServices(ctx, cred)
			if err != nil {
				return nil, err
			}
			items := make([]backend.ContentItem, 0, len(svcs))
			for _, s := range svcs {
				items = append(items, s.Item())
			}
			return items, nil
		},
		save: func(ctx context.Context, cred, id string, fields map[string]string, files []backend.Attachment) (backend.ContentItem, error) {
			method, path := http.MethodPost, "/services"
			if id != "" {
				method, path = http.MethodPut, "/services/"+id
			}
			s, err := backend.SubmitForm[backend.Service](ctx, a.Backend, cred, method, path, fields, files)
			if err != nil {
				return backend.ContentItem{}, err
			}
			return s.Item(), nil
		},
		deletePath: func(id string) string { return "/services/deleteService/" + id },
	}
}

// ValidationError marks a submit rejected before any backend call.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// validate enforces the required draft fields, keyed by display label.
func (ent *contentEntity) validate(d *ContentDraft) error {
	errs := validation.Errors{}
	for _, spec := range ent.fields {
		if spec.Required {
			errs[spec.Label] = validation.Validate(d.Fields[spec.Name], validation.Required)
		}
	}
	errs[ent.bodyLabel] = validation.Validate(d.Fields[ent.bodyField], validation.Required)
	return errs.Filter()
}

// submit validates the draft and pushes it to the backend. A validation
// failure returns a ValidationError without touching the network. A
// backend failure puts the form back into its open state so the draft can
// be corrected and resubmitted.
func (ent *contentEntity) submit(ctx context.Context, cred string, f *FormSession) (backend.ContentItem, error) {
	d := f.Draft()
	if err := ent.validate(d); err != nil {
		return backend.ContentItem{}, &ValidationError{Err: err}
	}

	f.setState(FormSubmitting)

	fields := make(map[string]string, len(d.Fields))
	for k, v := range d.Fields {
		fields[k] = v
	}
	names := make([]string, 0, len(d.Files))
	for name := range d.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	files := make([]backend.Attachment, 0, len(names))
	for _, name := range names {
		pf := d.Files[name]
		files = append(files, backend.Attachment{
			Field:    name,
			Filename: pf.Filename,
			Data:     pf.Data,
		})
	}

	item, err := ent.save(ctx, cred, d.ID, fields, files)
	if err != nil {
		f.setState(FormOpen)
		return backend.ContentItem{}, err
	}
	return item, nil
}

// draftFrom seeds an edit draft from a listed item. Attachment fields stay
// unset; an untouched file input means "leave the persisted asset alone".
func (ent *contentEntity) draftFrom(item backend.ContentItem) *ContentDraft {
	d := NewDraft()
	d.ID = item.ID
	d.Fields[ent.titleField] = item.Title
	d.Fields[ent.slugField] = item.TitleURL
	d.Fields[ent.bodyField] = item.Body
	return d
}

// ensureLoaded lazily fills the entity snapshot on first need. A fetch
// failure is flashed and leaves the snapshot unloaded so the next page
// view retries.
func (a *App) ensureLoaded(c echo.Context, ent *contentEntity, cred string) {
	if ent.snapshot.Loaded() {
		return
	}
	items, err := ent.list(c.Request().Context(), cred)
	if err != nil {
		FlashError(c, apiMessage(err, "Failed to load "+ent.plural+"."))
		return
	}
	ent.snapshot.Replace(items)
}

func (a *App) handleContentList(ent *contentEntity) echo.HandlerFunc {
	return func(c echo.Context) error {
		a.ensureLoaded(c, ent, backendCred(c))

		items := ent.snapshot.Items()
		rows := make([]views.ContentRow, 0, len(items))
		for _, item := range items {
			rows = append(rows, views.ContentRow{
				ID:        item.ID,
				Title:     item.Title,
				TitleURL:  item.TitleURL,
				Status:    item.Status,
				CreatedAt: item.CreatedAt,
				Images:    item.Images,
				SEOID:     item.SEOID,
				HasSEO:    item.HasSEO(),
				Snippet:   views.Snippet(item.Body, 120),
			})
		}

		view := views.ContentPageView{
			Label:    ent.label,
			Plural:   ent.plural,
			BasePath: ent.basePath,
			Rows:     rows,
			Csrf:     CsrfToken(c),
		}
		if key := c.QueryParam("form"); key != "" {
			if f, ok := a.Forms.Get(key); ok && f.Entity == ent.name {
				view.Form = ent.formView(f)
			}
		}
		return Render(c, views.Layout(ent.label+" Management", ent.name, CsrfToken(c), PopNotices(c), views.ContentPage(view)))
	}
}

// formView projects an open session into its render model. Pending files
// preview from the spool; on edit, untouched fields fall back to the
// persisted asset URL.
func (ent *contentEntity) formView(f *FormSession) *views.FormView {
	d := f.Draft()
	v := &views.FormView{
		Key:        f.Key,
		EditingID:  d.ID,
		Submitting: f.State() == FormSubmitting,
		Body: views.FieldView{
			Name:     ent.bodyField,
			Label:    ent.bodyLabel,
			Value:    d.Fields[ent.bodyField],
			Required: true,
		},
	}
	for _, spec := range ent.fields {
		v.Fields = append(v.Fields, views.FieldView{
			Name:     spec.Name,
			Label:    spec.Label,
			Value:    d.Fields[spec.Name],
			Required: spec.Required,
		})
	}
	var persisted map[string]string
	if d.ID != "" {
		if item, ok := ent.snapshot.Get(d.ID); ok {
			persisted = item.Images
		}
	}
	for _, spec := range ent.files {
		fv := views.FileView{Name: spec.Name, Label: spec.Label}
		if pf, ok := d.Files[spec.Name]; ok {
			fv.Preview = "/previews/" + pf.Preview
		} else if url, ok := persisted[spec.Name]; ok {
			fv.Preview = url
		}
		v.Files = append(v.Files, fv)
	}
	return v
}

func (a *App) handleContentNew(ent *contentEntity) echo.HandlerFunc {
	return func(c echo.Context) error {
		f := a.Forms.Open(ent.name, NewDraft())
		return c.Redirect(http.StatusSeeOther, ent.basePath+"/?form="+f.Key)
	}
}

func (a *App) handleContentEdit(ent *contentEntity) echo.HandlerFunc {
	return func(c echo.Context) error {
		a.ensureLoaded(c, ent, backendCred(c))
		id := c.Param("id")
		item, ok := ent.snapshot.Get(id)
		if !ok {
			FlashError(c, ent.label+" not found.")
			return c.Redirect(http.StatusSeeOther, ent.basePath+"/")
		}
		f := a.Forms.Open(ent.name, ent.draftFrom(item))
		return c.Redirect(http.StatusSeeOther, ent.basePath+"/?form="+f.Key)
	}
}

func (a *App) handleContentSave(ent *contentEntity) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.FormValue("form")
		f, ok := a.Forms.Get(key)
		if !ok || f.Entity != ent.name {
			FlashError(c, "This form is no longer open. Please start again.")
			return c.Redirect(http.StatusSeeOther, ent.basePath+"/")
		}

		for _, spec := range ent.fields {
			f.SetField(spec.Name, c.FormValue(spec.Name))
		}
		f.SetField(ent.bodyField, c.FormValue(ent.bodyField))

		for _, spec := range ent.files {
			fh, err := c.FormFile(spec.Name)
			if err != nil {
				continue // no new file chosen for this field
			}
			if fh.Size > maxUploadSize {
				FlashError(c, spec.Label+" exceeds the 6MB upload limit.")
				return c.Redirect(http.StatusSeeOther, ent.basePath+"/?form="+key)
			}
			src, err := fh.Open()
			if err != nil {
				return err
			}
			data, name, err := processImage(src, fh.Filename)
			src.Close()
			if err != nil {
				FlashError(c, spec.Label+" is not a usable image.")
				return c.Redirect(http.StatusSeeOther, ent.basePath+"/?form="+key)
			}
			if err := f.AttachFile(spec.Name, name, data); err != nil {
				return err
			}
		}

		item, err := ent.submit(c.Request().Context(), backendCred(c), f)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				FlashError(c, verr.Error())
			} else {
				FlashError(c, apiMessage(err, "Failed to save the "+ent.name+". Please try again."))
			}
			return c.Redirect(http.StatusSeeOther, ent.basePath+"/?form="+key)
		}

		created := f.Draft().ID == ""
		if created {
			ent.snapshot.Append(item)
			Flash(c, ent.label+" created successfully!")
			a.record("create", ent.name, item.ID, item.Title)
		} else {
			ent.snapshot.Patch(item)
			Flash(c, ent.label+" updated successfully!")
			a.record("update", ent.name, item.ID, item.Title)
		}
		a.Forms.Drop(key)
		return c.Redirect(http.StatusSeeOther, ent.basePath+"/")
	}
}

func (a *App) handleContentCancel(ent *contentEntity) echo.HandlerFunc {
	return func(c echo.Context) error {
		a.Forms.Drop(c.FormValue("form"))
		return c.Redirect(http.StatusSeeOther, ent.basePath+"/")
	}
}

func (a *App) handleContentDelete(ent *contentEntity) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		err := a.Backend.Delete(c.Request().Context(), backendCred(c), ent.deletePath(id))
		if err != nil {
			FlashError(c, apiMessage(err, "Failed to delete the "+ent.name+"."))
			return c.Redirect(http.StatusSeeOther, ent.basePath+"/")
		}
		ent.snapshot.Remove(id)
		a.record("delete", ent.name, id, "")
		Flash(c, ent.label+" deleted successfully!")
		return c.Redirect(http.StatusSeeOther, ent.basePath+"/")
	}
}

// handleSEOUnlink removes an item's SEO profile. The listings embed the
// profile server-side, so the snapshot is invalidated and refetched rather
// than patched in place.
func (a *App) handleSEOUnlink(ent *contentEntity) echo.HandlerFunc {
	return func(c echo.Context) error {
		seoID := c.Param("id")
		err := a.Backend.Delete(c.Request().Context(), backendCred(c), "/SeoRouter/delete/"+seoID)
		if err != nil {
			FlashError(c, apiMessage(err, "Failed to remove the SEO profile."))
			return c.Redirect(http.StatusSeeOther, ent.basePath+"/")
		}
		ent.snapshot.Invalidate()
		a.record("unlink-seo", ent.name, seoID, "")
		Flash(c, "SEO profile removed.")
		return c.Redirect(http.StatusSeeOther, ent.basePath+"/")
	}
}
