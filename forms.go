package backoffice

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"
)

// FormState tracks where a form is in its lifecycle. A session only exists
// while its form is open; Closed is reached when the session is dropped.
type FormState int

const (
	FormClosed FormState = iota
	FormOpen
	FormSubmitting
)

// PendingFile is a local file selected in a form but not yet accepted by the
// backend. Its bytes are spooled alongside a preview asset served under
// /previews/ until the draft is submitted or discarded.
type PendingFile struct {
	Filename string
	Data     []byte
	Preview  string // preview asset name inside the spool dir
}

// ContentDraft is the transient working copy of one entity's editable
// fields. It exists only while its owning form is open and is never
// persisted as-is.
type ContentDraft struct {
	ID     string // empty for create, set for edit
	Fields map[string]string
	Files  map[string]*PendingFile
}

// NewDraft returns a blank draft for a create form.
func NewDraft() *ContentDraft {
	return &ContentDraft{
		Fields: make(map[string]string),
		Files:  make(map[string]*PendingFile),
	}
}

// FormSession holds one open form's draft and state.
type FormSession struct {
	Key    string
	Entity string

	mu    sync.Mutex
	state FormState
	draft *ContentDraft
	dir   string
}

// State returns the current lifecycle state.
func (f *FormSession) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *FormSession) setState(s FormState) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

// Draft returns the session's working copy.
func (f *FormSession) Draft() *ContentDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetField replaces one field in the draft.
func (f *FormSession) SetField(name, value string) {
	f.mu.Lock()
	f.draft.Fields[name] = value
	f.mu.Unlock()
}

// AttachFile replaces the pending file for a field, spooling a preview
// asset. Any preview previously derived for the same field is released
// before the new one is created.
func (f *FormSession) AttachFile(field, filename string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if prev, ok := f.draft.Files[field]; ok {
		_ = os.Remove(filepath.Join(f.dir, prev.Preview))
	}
	preview := randomKey() + ".jpg"
	if err := os.WriteFile(filepath.Join(f.dir, preview), data, 0o644); err != nil {
		return err
	}
	f.draft.Files[field] = &PendingFile{
		Filename: filename,
		Data:     data,
		Preview:  preview,
	}
	return nil
}

// release frees every spooled preview and clears the pending files. Called
// on cancel and after a successful submit.
func (f *FormSession) release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, pf := range f.draft.Files {
		_ = os.Remove(filepath.Join(f.dir, pf.Preview))
	}
	f.draft.Files = make(map[string]*PendingFile)
	f.state = FormClosed
}

// FormRegistry owns the open form sessions and their preview spool dir.
type FormRegistry struct {
	mu       sync.Mutex
	sessions map[string]*FormSession
	dir      string
}

// NewFormRegistry creates a registry spooling previews under dir.
func NewFormRegistry(dir string) (*FormRegistry, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FormRegistry{
		sessions: make(map[string]*FormSession),
		dir:      dir,
	}, nil
}

// Dir returns the preview spool directory.
func (r *FormRegistry) Dir() string { return r.dir }

// Open registers a new session around the given draft. A blank draft makes
// an open-create form; a pre-filled one (file fields left unset) makes
// open-edit.
func (r *FormRegistry) Open(entity string, draft *ContentDraft) *FormSession {
	f := &FormSession{
		Key:    randomKey(),
		Entity: entity,
		state:  FormOpen,
		draft:  draft,
		dir:    r.dir,
	}
	r.mu.Lock()
	r.sessions[f.Key] = f
	r.mu.Unlock()
	return f
}

// Get looks up an open session by key.
func (r *FormRegistry) Get(key string) (*FormSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.sessions[key]
	return f, ok
}

// Drop closes a session, releasing every preview it derived.
func (r *FormRegistry) Drop(key string) {
	r.mu.Lock()
	f, ok := r.sessions[key]
	delete(r.sessions, key)
	r.mu.Unlock()
	if ok {
		f.release()
	}
}

func randomKey() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err) // rand.Read does not fail on supported platforms
	}
	return hex.EncodeToString(b)
}
