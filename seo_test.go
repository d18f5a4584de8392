package backoffice

import (
	"encoding/json"
	"testing"

	"github.com/mkarell/backoffice/backend"
)

func TestParseOwner(t *testing.T) {
	tests := []struct {
		in   string
		want Owner
	}{
		{"", Owner{}},
		{"blog:b1", Owner{Kind: OwnerBlog, ID: "b1"}},
		{"service:s1", Owner{Kind: OwnerService, ID: "s1"}},
		{"blog:", Owner{}},
		{"blog", Owner{}},
		{"page:p1", Owner{}},
		{"blog:id:with:colons", Owner{Kind: OwnerBlog, ID: "id:with:colons"}},
	}

	for _, tt := range tests {
		if got := ParseOwner(tt.in); got != tt.want {
			t.Errorf("ParseOwner(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestOwnerCreatePath(t *testing.T) {
	if got := (Owner{Kind: OwnerBlog, ID: "b1"}).createPath(); got != "/SeoRouter/CreateSeoFormBlog" {
		t.Errorf("blog path = %q", got)
	}
	if got := (Owner{Kind: OwnerService, ID: "s1"}).createPath(); got != "/SeoRouter/CreateSeoFormService" {
		t.Errorf("service path = %q", got)
	}
}

func TestSEOPayloadCarriesExactlyOneOwner(t *testing.T) {
	blog := seoPayload{
		SEOProfile: backend.SEOProfile{PageTitle: "Title"},
		BlogID:     "b1",
	}
	data, err := json.Marshal(blog)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	json.Unmarshal(data, &m)
	if m["blog_id"] != "b1" {
		t.Errorf("blog_id = %v, want b1", m["blog_id"])
	}
	if _, present := m["service_id"]; present {
		t.Error("service_id must be absent from a blog payload")
	}
	if m["page_title"] != "Title" {
		t.Errorf("page_title = %v; the profile fields must marshal flat", m["page_title"])
	}

	svc := seoPayload{
		SEOProfile: backend.SEOProfile{PageTitle: "Title"},
		ServiceID:  "s1",
	}
	data, _ = json.Marshal(svc)
	m = nil
	json.Unmarshal(data, &m)
	if _, present := m["blog_id"]; present {
		t.Error("blog_id must be absent from a service payload")
	}
	if m["service_id"] != "s1" {
		t.Errorf("service_id = %v, want s1", m["service_id"])
	}
}
