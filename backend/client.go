// Package backend is the console's client for the content-platform API.
// It issues credentialed requests against a single configured base URL and
// normalizes every failure into an *APIError. It deliberately performs no
// retries and no deduplication: a duplicate submit produces a duplicate call.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Client issues authenticated requests to the backend API.
type Client struct {
	base string
	http *http.Client
}

// New creates a Client for the given base URL.
func New(base string) *Client {
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		http: &http.Client{},
	}
}

// APIError is the normalized failure shape for every backend call.
// Status 0 means the request never reached the server.
type APIError struct {
	Status  int
	Message string
	cause   error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend unreachable: %s", e.Message)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.cause }

func networkError(err error) *APIError {
	return &APIError{Status: 0, Message: "network error", cause: err}
}

// errorMessage pulls the optional human-readable message out of an error
// payload, falling back to a generic marker.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return "request failed"
}

func (c *Client) do(ctx context.Context, method, path, cred, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return networkError(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if cred != "" {
		req.Header.Set("Cookie", cred)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &APIError{Status: resp.StatusCode, Message: "malformed response", cause: err}
		}
	}
	return nil
}

type authResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CheckAuth asks the backend whether the stored session cookie is still
// valid. Any failure is reported as not authenticated alongside the error.
func (c *Client) CheckAuth(ctx context.Context, cred string) (bool, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodGet, "/admin/checkAuth", cred, "", nil, &out); err != nil {
		return false, err
	}
	return out.Success, nil
}

// Login exchanges operator credentials for the backend session cookie.
// The returned cred is the Cookie header value to replay on later calls.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "pwd": password})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/admin/login", bytes.NewReader(payload))
	if err != nil {
		return "", networkError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return "", networkError(err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", networkError(err)
	}
	var out authResponse
	_ = json.Unmarshal(data, &out)
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !out.Success {
		msg := out.Message
		if msg == "" {
			msg = errorMessage(data)
		}
		status := resp.StatusCode
		if status >= 200 && status <= 299 {
			status = http.StatusUnauthorized
		}
		return "", &APIError{Status: status, Message: msg}
	}
	var pairs []string
	for _, ck := range resp.Cookies() {
		pairs = append(pairs, ck.Name+"="+ck.Value)
	}
	if len(pairs) == 0 {
		return "", &APIError{Status: resp.StatusCode, Message: "login response carried no session cookie"}
	}
	return strings.Join(pairs, "; "), nil
}

// Logout invalidates the backend session. Best effort on the caller's side:
// the console drops its own session regardless of the outcome.
func (c *Client) Logout(ctx context.Context, cred string) error {
	return c.do(ctx, http.MethodPost, "/admin/logout", cred, "", nil, nil)
}

// ListBlogs fetches the full blog collection (bare JSON array).
func (c *Client) ListBlogs(ctx context.Context, cred string) ([]Blog, error) {
	var out []Blog
	if err := c.do(ctx, http.MethodGet, "/blogs", cred, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListServices fetches the full service collection.
func (c *Client) ListServices(ctx context.Context, cred string) ([]Service, error) {
	var out []Service
	if err := c.do(ctx, http.MethodGet, "/services", cred, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLeads fetches the enquiry collection. Unlike the content endpoints the
// backend wraps this one in a {"data": [...]} envelope.
func (c *Client) ListLeads(ctx context.Context, cred string) ([]Lead, error) {
	var out struct {
		Data []Lead `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/enquiry", cred, "", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Delete issues a DELETE against the given resource path.
func (c *Client) Delete(ctx context.Context, cred, path string) error {
	return c.do(ctx, http.MethodDelete, path, cred, "", nil, nil)
}

// BulkDeleteLeads removes every lead in ids with a single call.
func (c *Client) BulkDeleteLeads(ctx context.Context, cred string, ids []string) error {
	payload, err := json.Marshal(map[string][]string{"ids": ids})
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/enquiry", cred, "application/json", bytes.NewReader(payload), nil)
}

// CreateSEO posts a profile payload to one of the SEO linking endpoints and
// returns the backend's message, if any. The backend owns idempotency: a
// duplicate link attempt is its call to accept or reject.
func (c *Client) CreateSEO(ctx context.Context, cred, path string, body any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, path, cred, "application/json", bytes.NewReader(payload), &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// SubmitForm sends a create or update for one entity and decodes the
// canonical entity the backend returns. With no pending files the fields go
// out as a JSON object; with at least one file the whole payload switches to
// multipart. Persisted URLs for untouched attachments are simply absent,
// which the backend reads as "leave unchanged".
func SubmitForm[T any](ctx context.Context, c *Client, cred, method, path string, fields map[string]string, files []Attachment) (T, error) {
	var out T
	if len(files) == 0 {
		payload, err := json.Marshal(fields)
		if err != nil {
			return out, err
		}
		err = c.do(ctx, method, path, cred, "application/json", bytes.NewReader(payload), &out)
		return out, err
	}
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return out, err
		}
	}
	for _, f := range files {
		fw, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return out, err
		}
		if _, err := fw.Write(f.Data); err != nil {
			return out, err
		}
	}
	if err := w.Close(); err != nil {
		return out, err
	}
	err := c.do(ctx, method, path, cred, w.FormDataContentType(), &body, &out)
	return out, err
}
