package validation

import (
	"github.com/artpar/menud/internal/core/domain"
)

// =============================================================================
// Field Rule Messages
// =============================================================================

// Field rule messages, one per rule. Each covers the whole rule (presence,
// type, constraint) because the untyped payload cannot distinguish "absent"
// from "wrong type" in a way callers care about.
const (
	MsgNameInvalid        = "Name is required and must be a string of at least 3 characters"
	MsgDescriptionInvalid = "Description is required and must be a string of at least 10 characters"
	MsgPriceInvalid       = "Price is required and must be a number greater than 0"
	MsgCategoryInvalid    = "Category must be appetizer, entree, dessert, or beverage"
	MsgIngredientsInvalid = "Ingredients must be a non-empty array"
	MsgAvailableInvalid   = "Available must be a boolean"
)

// =============================================================================
// Payload Validation
// =============================================================================

// ValidateMenuItemPayload checks a decoded write payload against the menu item
// field rules and returns every failing rule's message in rule order. An empty
// result means the payload is valid.
//
// Rules are independent: a payload failing several rules collects one message
// per rule, not just the first. The payload is the raw decoded JSON body, so
// numbers are float64, arrays are []any, and absent keys assert as nil.
//
// Defaulting of the optional `available` field is the caller's job and happens
// only after validation passes; logged request bodies therefore always reflect
// the caller's raw input.
func ValidateMenuItemPayload(p map[string]any) []string {
	var messages []string

	if name, ok := p["name"].(string); !ok || len(name) < 3 {
		messages = append(messages, MsgNameInvalid)
	}
	if description, ok := p["description"].(string); !ok || len(description) < 10 {
		messages = append(messages, MsgDescriptionInvalid)
	}
	if price, ok := p["price"].(float64); !ok || price <= 0 {
		messages = append(messages, MsgPriceInvalid)
	}
	if category, ok := p["category"].(string); !ok || !domain.Category(category).IsValid() {
		messages = append(messages, MsgCategoryInvalid)
	}
	if ingredients, ok := p["ingredients"].([]any); !ok || len(ingredients) == 0 {
		messages = append(messages, MsgIngredientsInvalid)
	}
	if v, present := p["available"]; present {
		if _, ok := v.(bool); !ok {
			messages = append(messages, MsgAvailableInvalid)
		}
	}

	return messages
}
