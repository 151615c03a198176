package store

import (
	"context"

	"github.com/artpar/menud/internal/core/domain"
)

// =============================================================================
// Store Interface
// =============================================================================

// Store defines the data access interface for menu items.
//
// Implementations serialize access: a caller observes the store either
// before or after another caller's write, never part-way through one.
type Store interface {
	// ListItems returns every menu item in insertion order.
	ListItems(ctx context.Context) ([]domain.MenuItem, error)

	// GetItem returns the first item with the given id, or ErrNotFound.
	GetItem(ctx context.Context, id int) (*domain.MenuItem, error)

	// CreateItem appends a new item, assigning it the next id, and returns
	// the stored item.
	CreateItem(ctx context.Context, fields domain.MenuItem) (*domain.MenuItem, error)

	// UpdateItem replaces every field except id of the item with the given
	// id, keeping its position in the sequence, and returns the updated
	// item or ErrNotFound.
	UpdateItem(ctx context.Context, id int, fields domain.MenuItem) (*domain.MenuItem, error)

	// DeleteItem removes the item with the given id and returns the removed
	// item, or ErrNotFound.
	DeleteItem(ctx context.Context, id int) (*domain.MenuItem, error)

	// Lifecycle
	Close() error
}
