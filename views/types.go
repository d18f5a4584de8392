package views

// Notice is one notification surfaced at the top of the next page.
type Notice struct {
	Kind    string // "success" or "error"
	Message string
}

// ContentRow is one row of a blog/service management table.
type ContentRow struct {
	ID        string
	Title     string
	TitleURL  string
	Status    string
	CreatedAt string
	Images    map[string]string // wire field -> persisted URL
	SEOID     string
	HasSEO    bool
	Snippet   string // plain-text excerpt of the body
}

// FieldView is one ordered text input in a form.
type FieldView struct {
	Name     string
	Label    string
	Value    string
	Required bool
}

// FileView is one attachment input with its current preview, which is
// either a spooled pending file or the persisted URL from an edit target.
type FileView struct {
	Name    string
	Label   string
	Preview string
}

// FormView models an open entity form.
type FormView struct {
	Key        string
	EditingID  string
	Submitting bool
	Fields     []FieldView
	Body       FieldView
	Files      []FileView
}

// ContentPageView is everything a content management page renders.
type ContentPageView struct {
	Label    string // "Blog"
	Plural   string // "Blogs"
	BasePath string // "/blogs"
	Rows     []ContentRow
	Form     *FormView // nil while the form is closed
	Csrf     string
}

// LeadRow is one inbound lead.
type LeadRow struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Company   string
	Message   string
	CreatedAt string
}

// LeadsView models the lead management page.
type LeadsView struct {
	Rows  []LeadRow
	Query string
	Total int
	Csrf  string
}

// OwnerOption is one pickable owner in the SEO linking form.
type OwnerOption struct {
	Value string // "blog:<id>" or "service:<id>"
	Label string
	Group string // "Blogs" or "Services"
}

// SEOView models the SEO linking page.
type SEOView struct {
	Owners []OwnerOption
	Csrf   string
}

// EventRow is one activity log entry.
type EventRow struct {
	At       string
	Action   string
	Entity   string
	EntityID string
	Detail   string
}
