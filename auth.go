package backoffice

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/labstack/echo/v4"

	"github.com/mkarell/backoffice/views"
)

func (a *App) handleLoginPage(c echo.Context) error {
	if cred := backendCred(c); cred != "" {
		if ok, err := a.Backend.CheckAuth(c.Request().Context(), cred); err == nil && ok {
			return c.Redirect(http.StatusSeeOther, "/")
		}
		clearBackendCred(c)
	}
	msg := ""
	for _, n := range PopNotices(c) {
		if n.Kind == "error" {
			msg = n.Message
			break
		}
	}
	return Render(c, views.Login(msg, CsrfToken(c)))
}

func (a *App) handleLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}

	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return RenderStatus(c, http.StatusBadRequest, views.Login("Please enter both email and password.", CsrfToken(c)))
	}
	if err := validation.Validate(email, is.EmailFormat); err != nil {
		return RenderStatus(c, http.StatusBadRequest, views.Login("Please enter a valid email address.", CsrfToken(c)))
	}

	cred, err := a.Backend.Login(c.Request().Context(), email, password)
	if err != nil {
		msg := apiMessage(err, "Login failed. Please check your credentials.")
		return RenderStatus(c, http.StatusUnauthorized, views.Login(msg, CsrfToken(c)))
	}

	if err := setBackendCred(c, cred); err != nil {
		return err
	}
	a.record("login", "session", "", email)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleLogout(c echo.Context) error {
	if cred := backendCred(c); cred != "" {
		// Best effort; the console session is cleared regardless.
		if err := a.Backend.Logout(c.Request().Context(), cred); err != nil {
			c.Logger().Warnf("backend logout failed: %v", err)
		}
	}
	clearBackendCred(c)
	return c.Redirect(http.StatusSeeOther, "/login/")
}
