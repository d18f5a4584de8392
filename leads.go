package backoffice

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mkarell/backoffice/backend"
	"github.com/mkarell/backoffice/views"
)

func (a *App) ensureLeadsLoaded(c echo.Context) {
	if a.leads.Loaded() {
		return
	}
	leads, err := a.Backend.ListLeads(c.Request().Context(), backendCred(c))
	if err != nil {
		FlashError(c, apiMessage(err, "Failed to load leads."))
		return
	}
	a.leads.Replace(leads)
}

// filterLeads narrows the snapshot by a case-insensitive substring match
// over name, email, and company. An empty query keeps everything.
func filterLeads(leads []backend.Lead, q string) []backend.Lead {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return leads
	}
	out := make([]backend.Lead, 0, len(leads))
	for _, l := range leads {
		if strings.Contains(strings.ToLower(l.Name), q) ||
			strings.Contains(strings.ToLower(l.Email), q) ||
			strings.Contains(strings.ToLower(l.Company), q) {
			out = append(out, l)
		}
	}
	return out
}

func leadRow(l backend.Lead) views.LeadRow {
	return views.LeadRow{
		ID:        l.ID,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Company:   l.Company,
		Message:   l.Message,
		CreatedAt: l.CreatedAt,
	}
}

func (a *App) handleLeads(c echo.Context) error {
	a.ensureLeadsLoaded(c)

	all := a.leads.Items()
	q := c.QueryParam("q")
	filtered := filterLeads(all, q)
	rows := make([]views.LeadRow, 0, len(filtered))
	for _, l := range filtered {
		rows = append(rows, leadRow(l))
	}

	view := views.LeadsView{
		Rows:  rows,
		Query: q,
		Total: len(all),
		Csrf:  CsrfToken(c),
	}
	return Render(c, views.Layout("Leads", "lead", CsrfToken(c), PopNotices(c), views.Leads(view)))
}

func (a *App) handleLeadDetail(c echo.Context) error {
	a.ensureLeadsLoaded(c)
	lead, ok := a.leads.Get(c.Param("id"))
	if !ok {
		FlashError(c, "Lead not found.")
		return c.Redirect(http.StatusSeeOther, "/leads/")
	}
	return Render(c, views.Layout(lead.Name, "lead", CsrfToken(c), PopNotices(c), views.LeadDetail(leadRow(lead), CsrfToken(c))))
}

func (a *App) handleLeadDelete(c echo.Context) error {
	id := c.Param("id")
	if err := a.Backend.Delete(c.Request().Context(), backendCred(c), "/enquiry/"+id); err != nil {
		FlashError(c, apiMessage(err, "Failed to delete the lead."))
		return c.Redirect(http.StatusSeeOther, "/leads/")
	}
	a.leads.Remove(id)
	a.record("delete", "lead", id, "")
	Flash(c, "Lead deleted successfully!")
	return c.Redirect(http.StatusSeeOther, "/leads/")
}

// handleLeadBulkDelete removes every selected lead with one backend call.
func (a *App) handleLeadBulkDelete(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return err
	}
	ids := params["ids"]
	if len(ids) == 0 {
		FlashError(c, "Please select at least one lead to delete.")
		return c.Redirect(http.StatusSeeOther, "/leads/")
	}
	if err := a.Backend.BulkDeleteLeads(c.Request().Context(), backendCred(c), ids); err != nil {
		FlashError(c, apiMessage(err, "Failed to delete the selected leads."))
		return c.Redirect(http.StatusSeeOther, "/leads/")
	}
	a.leads.RemoveAll(ids)
	a.record("bulk-delete", "lead", "", strings.Join(ids, ","))
	Flash(c, "Selected leads deleted successfully!")
	return c.Redirect(http.StatusSeeOther, "/leads/")
}
