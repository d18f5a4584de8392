package backoffice

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
)

// fakeBackend is a minimal stand-in for the content-platform API.
type fakeBackend struct {
	authOK bool
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "backend-token"})
		w.Write([]byte(`{"success":true}`))
	})
	mux.HandleFunc("/admin/checkAuth", func(w http.ResponseWriter, r *http.Request) {
		if f.authOK && strings.Contains(r.Header.Get("Cookie"), "sid=backend-token") {
			w.Write([]byte(`{"success":true}`))
			return
		}
		w.Write([]byte(`{"success":false}`))
	})
	mux.HandleFunc("/admin/logout", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	})
	mux.HandleFunc("/blogs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"b1","blog_title":"First Post","blog_content":"hello"}]`))
	})
	mux.HandleFunc("/services", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/enquiry", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})
	return mux
}

func setupTestApp(t *testing.T, fb *fakeBackend) (*App, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(fb.handler())
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	app := New(Config{
		Addr:          ":0",
		Backend:       BackendConfig{URL: srv.URL},
		SessionSecret: "test-secret-key",
		PreviewDir:    filepath.Join(dir, "previews"),
		AuditDBPath:   filepath.Join(dir, "audit.db"),
	})
	if err := app.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app, srv
}

// browser carries cookies between requests like a real client would.
type browser struct {
	t    *testing.T
	app  *App
	jar  map[string]*http.Cookie
	csrf string
}

func newBrowser(t *testing.T, app *App) *browser {
	return &browser{t: t, app: app, jar: make(map[string]*http.Cookie)}
}

func (b *browser) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("X-CSRF-Token", b.csrf)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, ck := range b.jar {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	b.app.Echo.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(b.jar, ck.Name)
			continue
		}
		b.jar[ck.Name] = ck
		if ck.Name == "_csrf" {
			b.csrf = ck.Value
		}
	}
	return rec
}

func (b *browser) login() {
	b.t.Helper()
	b.do(http.MethodGet, "/login/", nil) // picks up the csrf cookie
	rec := b.do(http.MethodPost, "/login/", url.Values{
		"email":    {"op@example.com"},
		"password": {"secret"},
	})
	if rec.Code != http.StatusSeeOther {
		b.t.Fatalf("login status = %d, want 303; body: %s", rec.Code, rec.Body.String())
	}
}

func TestGateRedirectsAnonymous(t *testing.T) {
	app, _ := setupTestApp(t, &fakeBackend{authOK: true})
	b := newBrowser(t, app)

	rec := b.do(http.MethodGet, "/blogs/", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login/" {
		t.Errorf("Location = %q, want /login/", loc)
	}
}

func TestLoginThenGatedPage(t *testing.T) {
	app, _ := setupTestApp(t, &fakeBackend{authOK: true})
	b := newBrowser(t, app)
	b.login()

	rec := b.do(http.MethodGet, "/blogs/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "First Post") {
		t.Error("page should render the fetched blog")
	}
}

func TestGateRedirectsWhenBackendRejects(t *testing.T) {
	fb := &fakeBackend{authOK: true}
	app, _ := setupTestApp(t, fb)
	b := newBrowser(t, app)
	b.login()

	// The backend session dies out from under the console.
	fb.authOK = false

	rec := b.do(http.MethodGet, "/blogs/", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login/" {
		t.Errorf("Location = %q, want /login/", loc)
	}
}

func TestGateRedirectsOnBackendOutage(t *testing.T) {
	fb := &fakeBackend{authOK: true}
	app, srv := setupTestApp(t, fb)
	b := newBrowser(t, app)
	b.login()

	srv.Close() // the backend disappears entirely

	rec := b.do(http.MethodGet, "/blogs/", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303 on outage, not an error page", rec.Code)
	}
}

func TestLoginValidation(t *testing.T) {
	app, _ := setupTestApp(t, &fakeBackend{authOK: true})
	b := newBrowser(t, app)
	b.do(http.MethodGet, "/login/", nil)

	rec := b.do(http.MethodPost, "/login/", url.Values{"email": {""}, "password": {""}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty credentials status = %d, want 400", rec.Code)
	}

	rec = b.do(http.MethodPost, "/login/", url.Values{"email": {"not-an-email"}, "password": {"x"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad email status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "valid email") {
		t.Error("response should explain the email problem")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	app, _ := setupTestApp(t, &fakeBackend{authOK: true})
	b := newBrowser(t, app)
	b.login()

	rec := b.do(http.MethodPost, "/logout/", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("logout status = %d, want 303", rec.Code)
	}

	rec = b.do(http.MethodGet, "/blogs/", nil)
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status after logout = %d, want 303 back to login", rec.Code)
	}
}

func TestHomeRedirectsToBlogs(t *testing.T) {
	app, _ := setupTestApp(t, &fakeBackend{authOK: true})
	b := newBrowser(t, app)
	b.login()

	rec := b.do(http.MethodGet, "/", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/blogs/" {
		t.Errorf("Location = %q, want /blogs/", loc)
	}
}
