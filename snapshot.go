package backoffice

import "sync"

// Snapshot is the per-entity in-memory list cache. It is a read cache of
// backend state: replaced wholesale by a fetch, patched optimistically after
// a successful write, or invalidated to force the next view to re-fetch.
// Only the owning list view writes a given snapshot.
type Snapshot[T any] struct {
	mu     sync.RWMutex
	items  []T
	loaded bool
	id     func(T) string
}

// NewSnapshot creates an empty snapshot keyed by the given id accessor.
func NewSnapshot[T any](id func(T) string) *Snapshot[T] {
	return &Snapshot[T]{id: id}
}

// Loaded reports whether the snapshot holds a fetched collection.
func (s *Snapshot[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Replace installs a freshly fetched collection.
func (s *Snapshot[T]) Replace(items []T) {
	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()
}

// Invalidate clears the snapshot so the next view triggers a re-fetch.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	s.items = nil
	s.loaded = false
	s.mu.Unlock()
}

// Items returns a copy of the current collection.
func (s *Snapshot[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of cached items.
func (s *Snapshot[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the item with the given id.
func (s *Snapshot[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Append adds the canonical entity returned by a successful create.
func (s *Snapshot[T]) Append(item T) {
	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
}

// Patch replaces the item matching the canonical entity's id, leaving every
// other item untouched. A miss is a no-op.
func (s *Snapshot[T]) Patch(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id(item)
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = item
			return
		}
	}
}

// Remove drops the item with the given id after a successful delete.
func (s *Snapshot[T]) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// RemoveAll drops every item whose id is in ids (bulk delete).
func (s *Snapshot[T]) RemoveAll(ids []string) {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if _, gone := set[s.id(item)]; !gone {
			kept = append(kept, item)
		}
	}
	s.items = kept
}
