// Package store provides the data store for menu items.
package store

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrNotFound is returned when no menu item has the requested id.
	ErrNotFound = errors.New("menu item not found")

	// ErrClosed is returned when the store is used after Close.
	ErrClosed = errors.New("store is closed")
)

// StoreError wraps errors with the operation and item id that produced them.
type StoreError struct {
	Op      string // Operation that failed (e.g., "UpdateItem")
	ID      int    // Menu item id, zero when not applicable
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %d: %s", e.Op, e.ID, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(op string, id int, message string, err error) *StoreError {
	return &StoreError{
		Op:      op,
		ID:      id,
		Message: message,
		Err:     err,
	}
}
