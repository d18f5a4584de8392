package backend

// SEORef is the backend's marker that a content item has an SEO profile
// attached. Only the profile id is embedded in content payloads.
type SEORef struct {
	ID string `json:"_id"`
}

// Blog is a blog post as the backend returns it.
type Blog struct {
	ID         string  `json:"_id"`
	Title      string  `json:"blog_title"`
	TitleURL   string  `json:"blog_title_url"`
	Content    string  `json:"blog_content"`
	SmallImage string  `json:"small_image"`
	LargeImage string  `json:"large_image"`
	Banner     string  `json:"banner"`
	SEO        *SEORef `json:"blogSeoDetails,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
}

// Service is a service listing as the backend returns it.
type Service struct {
	ID         string  `json:"_id"`
	Title      string  `json:"service_title"`
	TitleURL   string  `json:"service_title_url"`
	Content    string  `json:"service_content"`
	SmallImage string  `json:"small_image"`
	LargeImage string  `json:"large_image"`
	SideImage  string  `json:"side_image"`
	SEO        *SEORef `json:"serviceSeoDetails,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
}

// Lead is an inbound enquiry record. Read-mostly: the console lists and
// deletes leads but never creates or edits them.
type Lead struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// SEOProfile is the flat metadata bag posted to the SEO linking endpoints.
// The owning id (blog_id or service_id) is added by the caller; exactly one
// must be set. JSON tags follow the backend's wire names verbatim, typos
// included.
type SEOProfile struct {
	PageTitle        string `json:"page_title"`
	MetaDescription  string `json:"metaDes"`
	MetaKeywords     string `json:"metaKeywords"`
	CanonicalURL     string `json:"cannicalUrl"`
	OGTitle          string `json:"ogTitle"`
	OGDescription    string `json:"ogDes"`
	OGImageURL       string `json:"OgImageUrl"`
	OGType           string `json:"OgType"`
	RobotsMeta       string `json:"robotsMeta"`
	SchemaMarkup     string `json:"schemaMaprkup"`
	Copyright        bool   `json:"copyright"`
	SiteVerification bool   `json:"googleSiteVerification"`
}

// ContentItem is the console's normalized view of a blog or service.
// List snapshots and forms work on this shape so one code path serves
// both entity types.
type ContentItem struct {
	ID        string
	Title     string
	TitleURL  string
	Body      string
	Images    map[string]string // wire field name -> persisted URL
	SEOID     string
	Status    string
	CreatedAt string
}

// HasSEO reports whether an SEO profile is linked to this item.
func (i ContentItem) HasSEO() bool { return i.SEOID != "" }

// Item converts a Blog into the normalized console shape.
func (b Blog) Item() ContentItem {
	item := ContentItem{
		ID:        b.ID,
		Title:     b.Title,
		TitleURL:  b.TitleURL,
		Body:      b.Content,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		Images: map[string]string{
			"small_image": b.SmallImage,
			"large_image": b.LargeImage,
			"banner":      b.Banner,
		},
	}
	if b.SEO != nil {
		item.SEOID = b.SEO.ID
	}
	return item
}

// Item converts a Service into the normalized console shape.
func (s Service) Item() ContentItem {
	item := ContentItem{
		ID:        s.ID,
		Title:     s.Title,
		TitleURL:  s.TitleURL,
		Body:      s.Content,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		Images: map[string]string{
			"small_image": s.SmallImage,
			"large_image": s.LargeImage,
			"side_image":  s.SideImage,
		},
	}
	if s.SEO != nil {
		item.SEOID = s.SEO.ID
	}
	return item
}

// Attachment is a pending local file carried into a multipart submit.
type Attachment struct {
	Field    string
	Filename string
	Data     []byte
}
