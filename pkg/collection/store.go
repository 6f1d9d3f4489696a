// Package collection holds the in-memory state a page owns for one
// profile-scoped resource: the initial load, the local array updates that
// mirror successful mutations, and the derived read-only values computed from
// the items on demand. Collections stay small (personal-portfolio scale), so
// derived reads are plain synchronous scans.
package collection

import (
	"context"
	"sync"
)

// Store keeps one resource collection. ID extraction is injected so the store
// stays agnostic of the record type.
type Store[T any] struct {
	mu      sync.Mutex
	id      func(T) string
	items   []T
	loading bool
}

func New[T any](id func(T) string) *Store[T] {
	return &Store[T]{id: id}
}

// Load replaces the collection with a fresh fetch. While the fetch runs the
// store reports loading; on failure the previous items are kept untouched and
// loading still drops back to false.
func (s *Store[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	items, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return err
	}
	s.items = items
	return nil
}

func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Items returns a copy of the collection in display order.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// CountBy returns how many items satisfy pred.
func (s *Store[T]) CountBy(pred func(T) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		if pred(it) {
			n++
		}
	}
	return n
}

// Filter returns the items satisfying pred, preserving order.
func (s *Store[T]) Filter(pred func(T) bool) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []T
	for _, it := range s.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// Find returns the item with the given id.
func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if s.id(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Append adds a record returned by a successful create.
func (s *Store[T]) Append(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Replace swaps the record matching item's id in place. No other record
// changes. Returns false when no record matches.
func (s *Store[T]) Replace(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(item)
}

func (s *Store[T]) replaceLocked(item T) bool {
	id := s.id(item)
	for i, it := range s.items {
		if s.id(it) == id {
			s.items[i] = item
			return true
		}
	}
	return false
}

// Remove filters the record with the given id out of the collection.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if s.id(it) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Delete removes a record only after interactive confirmation and a
// successful remote delete: declined confirmation makes no network call and
// leaves the collection unchanged; a failed remote call leaves the collection
// unchanged and raises alert exactly once. Deletion is deliberately not
// optimistic.
func (s *Store[T]) Delete(ctx context.Context, id string, confirm func() bool, remove func(context.Context) error, alert func(error)) error {
	if confirm != nil && !confirm() {
		return nil
	}
	if err := remove(ctx); err != nil {
		if alert != nil {
			alert(err)
		}
		return err
	}
	s.Remove(id)
	return nil
}

// CreateOptimistic appends draft immediately, then runs the remote create.
// On success the draft entry is swapped for the server's record (which
// carries the assigned id); on failure the pre-mutation snapshot is restored.
func (s *Store[T]) CreateOptimistic(ctx context.Context, draft T, create func(context.Context) (T, error)) (T, error) {
	s.mu.Lock()
	snapshot := make([]T, len(s.items))
	copy(snapshot, s.items)
	s.items = append(s.items, draft)
	idx := len(s.items) - 1
	s.mu.Unlock()

	created, err := create(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.items = snapshot
		var zero T
		return zero, err
	}
	if idx < len(s.items) {
		s.items[idx] = created
	} else {
		s.items = append(s.items, created)
	}
	return created, nil
}

// UpdateOptimistic replaces the matching record immediately, then runs the
// remote update. On success the server's record wins; on failure the
// pre-mutation snapshot is restored.
func (s *Store[T]) UpdateOptimistic(ctx context.Context, updated T, update func(context.Context) (T, error)) (T, error) {
	s.mu.Lock()
	snapshot := make([]T, len(s.items))
	copy(snapshot, s.items)
	s.replaceLocked(updated)
	s.mu.Unlock()

	confirmed, err := update(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.items = snapshot
		var zero T
		return zero, err
	}
	s.replaceLocked(confirmed)
	return confirmed, nil
}
