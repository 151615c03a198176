// Package validation provides pure validation functions for write payloads.
//
// This package contains the functional core logic for validating menu item
// writes before they reach the store. All functions are pure (no I/O, no side
// effects) and operate on the untyped decoded JSON payload, so type-level
// defects (a numeric name, a string price) surface as field messages rather
// than as decode failures.
//
// # Functions
//
//   - ValidateMenuItemPayload: Check a payload against every field rule and
//     collect all failing messages in rule order
//
// # Usage
//
// The API validation middleware runs this before any write handler:
//
//	if messages := validation.ValidateMenuItemPayload(payload); len(messages) > 0 {
//	    // Return 400 Bad Request with all messages
//	}
package validation
