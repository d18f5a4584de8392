package backoffice

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/mkarell/backoffice/views"
)

// The notification relay rides on the console session: outcomes are queued
// as flashes and surfaced once on the next rendered page.

const (
	flashSuccess = "flash_success"
	flashError   = "flash_error"
)

// Flash queues a success notification.
func Flash(c echo.Context, msg string) {
	addFlash(c, flashSuccess, msg)
}

// FlashError queues an error notification.
func FlashError(c echo.Context, msg string) {
	addFlash(c, flashError, msg)
}

func addFlash(c echo.Context, key, msg string) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(msg, key)
	_ = sess.Save(c.Request(), c.Response())
}

// PopNotices drains queued notifications for rendering.
func PopNotices(c echo.Context) []views.Notice {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	var notices []views.Notice
	for _, v := range sess.Flashes(flashSuccess) {
		if msg, ok := v.(string); ok {
			notices = append(notices, views.Notice{Kind: "success", Message: msg})
		}
	}
	for _, v := range sess.Flashes(flashError) {
		if msg, ok := v.(string); ok {
			notices = append(notices, views.Notice{Kind: "error", Message: msg})
		}
	}
	_ = sess.Save(c.Request(), c.Response())
	return notices
}
