package audit

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "audit.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore should create missing directories: %v", err)
	}
	s.Close()
}

func TestAppendAndRecent(t *testing.T) {
	s := setupTestStore(t)

	if err := s.Append("create", "blog", "b1", "First Post"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Append("delete", "lead", "l1", ""); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	events, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Recent count = %d, want 2", len(events))
	}

	// Most recent first.
	if events[0].Action != "delete" || events[0].Entity != "lead" {
		t.Errorf("events[0] = %+v, want the delete event", events[0])
	}
	if events[1].Action != "create" || events[1].EntityID != "b1" || events[1].Detail != "First Post" {
		t.Errorf("events[1] = %+v, want the create event", events[1])
	}
	if events[0].At == "" {
		t.Error("events should carry a timestamp")
	}
}

func TestRecentLimit(t *testing.T) {
	s := setupTestStore(t)

	for i := 0; i < 10; i++ {
		if err := s.Append("update", "service", "s1", ""); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	events, err := s.Recent(3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("Recent(3) count = %d, want 3", len(events))
	}
}

func TestRecentEmptyStore(t *testing.T) {
	s := setupTestStore(t)

	events, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Recent on empty store = %d events, want 0", len(events))
	}
}
