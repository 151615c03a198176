package store

import (
	"context"
	"sync"

	"github.com/artpar/menud/internal/core/domain"
)

// =============================================================================
// MemoryStore
// =============================================================================

// MemoryStore keeps menu items in an ordered in-memory sequence.
//
// Items live in a slice rather than a map because both the list endpoint and
// the id assignment policy are defined over the sequence: listing returns
// insertion order, and the next id is the current length plus one. A
// sync.RWMutex serializes access so each request observes the store either
// before or after another request's write, never in between.
type MemoryStore struct {
	mu     sync.RWMutex
	items  []domain.MenuItem
	closed bool
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make([]domain.MenuItem, 0)}
}

// Seed loads the default menu into an empty store.
func (s *MemoryStore) Seed(ctx context.Context) error {
	for _, item := range DefaultMenu() {
		if _, err := s.CreateItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// cloneItem returns a copy whose Ingredients slice is independent of the
// original, so callers cannot mutate stored state through returned values.
func cloneItem(item domain.MenuItem) domain.MenuItem {
	item.Ingredients = append([]string(nil), item.Ingredients...)
	return item
}

// =============================================================================
// Store Implementation
// =============================================================================

// ListItems returns all menu items in insertion order.
func (s *MemoryStore) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreError("ListItems", 0, "store is closed", ErrClosed)
	}

	out := make([]domain.MenuItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, cloneItem(item))
	}
	return out, nil
}

// GetItem returns the first item with the given id.
func (s *MemoryStore) GetItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreError("GetItem", id, "store is closed", ErrClosed)
	}

	for _, item := range s.items {
		if item.ID == id {
			found := cloneItem(item)
			return &found, nil
		}
	}
	return nil, NewStoreError("GetItem", id, "menu item not found", ErrNotFound)
}

// CreateItem appends a new item and returns the stored copy.
//
// The assigned id is the sequence length plus one. After a delete this can
// reissue an id that an earlier item still holds; lookups then resolve to
// the first match in insertion order.
func (s *MemoryStore) CreateItem(ctx context.Context, fields domain.MenuItem) (*domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, NewStoreError("CreateItem", 0, "store is closed", ErrClosed)
	}

	item := cloneItem(fields)
	item.ID = len(s.items) + 1
	s.items = append(s.items, item)

	created := cloneItem(item)
	return &created, nil
}

// UpdateItem replaces the fields of the item with the given id, keeping its
// id and position.
func (s *MemoryStore) UpdateItem(ctx context.Context, id int, fields domain.MenuItem) (*domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, NewStoreError("UpdateItem", id, "store is closed", ErrClosed)
	}

	for i := range s.items {
		if s.items[i].ID == id {
			item := cloneItem(fields)
			item.ID = id
			s.items[i] = item

			updated := cloneItem(item)
			return &updated, nil
		}
	}
	return nil, NewStoreError("UpdateItem", id, "menu item not found", ErrNotFound)
}

// DeleteItem removes the item with the given id and returns it.
func (s *MemoryStore) DeleteItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, NewStoreError("DeleteItem", id, "store is closed", ErrClosed)
	}

	for i := range s.items {
		if s.items[i].ID == id {
			removed := cloneItem(s.items[i])
			s.items = append(s.items[:i], s.items[i+1:]...)
			return &removed, nil
		}
	}
	return nil, NewStoreError("DeleteItem", id, "menu item not found", ErrNotFound)
}

// Close marks the store closed. Subsequent operations return ErrClosed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.items = nil
	return nil
}
