// Package backoffice is a browser admin console for a small content
// platform. It authenticates against the platform's backend API with a
// cookie session and manages blog posts, service listings, inbound leads,
// and SEO profiles through that API. The backend owns all content state;
// the console holds only drafts and per-entity list snapshots.
package backoffice

import (
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkarell/backoffice/audit"
	"github.com/mkarell/backoffice/backend"
	"github.com/mkarell/backoffice/views"
)

// App is the central console application. It wires together the backend
// client, the audit store, the snapshots, and the Echo server.
type App struct {
	Config  Config
	Echo    *echo.Echo
	Backend *backend.Client
	Audit   *audit.Store
	Forms   *FormRegistry

	blogs    *Snapshot[backend.ContentItem]
	services *Snapshot[backend.ContentItem]
	leads    *Snapshot[backend.Lead]

	blogEntity    *contentEntity
	serviceEntity *contentEntity

	loginLimiter *loginLimiter
}

// New creates the console App for the given configuration.
func New(cfg Config) *App {
	cfg.setDefaults()
	return &App{
		Config: cfg,
		Echo:   echo.New(),
	}
}

// Init validates the configuration and wires every dependency and route
// without starting the listener.
func (a *App) Init() error {
	if err := a.Config.Validate(); err != nil {
		return err
	}

	a.Backend = backend.New(a.Config.Backend.URL)

	store, err := audit.NewStore(a.Config.AuditDBPath)
	if err != nil {
		return err
	}
	a.Audit = store

	a.Forms, err = NewFormRegistry(a.Config.PreviewDir)
	if err != nil {
		return err
	}

	itemID := func(i backend.ContentItem) string { return i.ID }
	a.blogs = NewSnapshot(itemID)
	a.services = NewSnapshot(itemID)
	a.leads = NewSnapshot(func(l backend.Lead) string { return l.ID })

	a.blogEntity = a.newBlogEntity()
	a.serviceEntity = a.newServiceEntity()

	a.loginLimiter = newLoginLimiter(a.Config.LoginMaxTry, time.Duration(a.Config.LoginWindowS)*time.Second)

	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

// Start initializes the app and serves until the listener stops.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Audit != nil {
		return a.Audit.Close()
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/login/", a.handleLoginPage)
	e.POST("/login/", a.handleLogin)
	e.POST("/logout/", a.handleLogout)

	// Everything below the gate is management chrome.
	g := e.Group("", a.requireSession)
	g.GET("/", handleHome)
	g.GET("/previews/:name", a.handlePreview)

	for _, ent := range []*contentEntity{a.blogEntity, a.serviceEntity} {
		base := ent.basePath
		g.GET(base+"/", a.handleContentList(ent))
		g.GET(base+"/new/", a.handleContentNew(ent))
		g.GET(base+"/:id/edit/", a.handleContentEdit(ent))
		g.POST(base+"/save/", a.handleContentSave(ent))
		g.POST(base+"/cancel/", a.handleContentCancel(ent))
		g.POST(base+"/:id/delete/", a.handleContentDelete(ent))
		g.POST(base+"/seo/:id/delete/", a.handleSEOUnlink(ent))
	}

	g.GET("/leads/", a.handleLeads)
	g.GET("/leads/:id/", a.handleLeadDetail)
	g.POST("/leads/:id/delete/", a.handleLeadDelete)
	g.POST("/leads/delete/", a.handleLeadBulkDelete)

	g.GET("/seo/", a.handleSEOPage)
	g.POST("/seo/save/", a.handleSEOSave)

	g.GET("/activity/", a.handleActivity)
}

func handleHome(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/blogs/")
}

// handlePreview serves a spooled attachment preview.
func (a *App) handlePreview(c echo.Context) error {
	name := filepath.Base(c.Param("name"))
	return c.File(filepath.Join(a.Forms.Dir(), name))
}

func (a *App) handleActivity(c echo.Context) error {
	events, err := a.Audit.Recent(100)
	if err != nil {
		return err
	}
	rows := make([]views.EventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, views.EventRow{
			At:       e.At,
			Action:   e.Action,
			Entity:   e.Entity,
			EntityID: e.EntityID,
			Detail:   e.Detail,
		})
	}
	return Render(c, views.Layout("Activity", "activity", CsrfToken(c), PopNotices(c), views.Activity(rows)))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// record appends an audit event; persistence problems are logged, never
// surfaced to the operator.
func (a *App) record(action, entity, entityID, detail string) {
	if a.Audit == nil {
		return
	}
	if err := a.Audit.Append(action, entity, entityID, detail); err != nil {
		a.Echo.Logger.Errorf("audit append failed: %v", err)
	}
}

// apiMessage surfaces a backend-rejected error's message verbatim when the
// backend provided one, otherwise the caller's generic fallback.
func apiMessage(err error, fallback string) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Status != 0 && apiErr.Message != "" && apiErr.Message != "request failed" {
		return apiErr.Message
	}
	return fallback
}
