// Package domain contains the core domain types for the menu service.
// This is part of the Functional Core - all functions are pure with no I/O.
package domain

import "fmt"

// =============================================================================
// Category
// =============================================================================

// Category classifies a menu item into one of the four fixed menu sections.
type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryEntree    Category = "entree"
	CategoryDessert   Category = "dessert"
	CategoryBeverage  Category = "beverage"
)

// Categories returns all valid categories in menu order.
func Categories() []Category {
	return []Category{CategoryAppetizer, CategoryEntree, CategoryDessert, CategoryBeverage}
}

// IsValid checks if the category is one of the four menu categories.
// Matching is case-sensitive: "Entree" is not a valid category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAppetizer, CategoryEntree, CategoryDessert, CategoryBeverage:
		return true
	default:
		return false
	}
}

// =============================================================================
// MenuItem
// =============================================================================

// MenuItem represents one record in the restaurant's offered dishes and drinks.
//
// The ID is assigned by the store on create and never changes afterwards.
// All other fields are replaced wholesale on update; partial updates are not
// supported.
type MenuItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Ingredients []string `json:"ingredients"`
	Available   bool     `json:"available"`
}

// ItemFromPayload builds a typed MenuItem from a validated and defaulted
// write payload. The payload must already have passed
// validation.ValidateMenuItemPayload and had `available` defaulted by the
// caller; ItemFromPayload does not re-check shapes.
//
// The returned item carries no ID. The store assigns one on create and keeps
// the existing one on update.
func ItemFromPayload(p map[string]any) MenuItem {
	name, _ := p["name"].(string)
	description, _ := p["description"].(string)
	price, _ := p["price"].(float64)
	category, _ := p["category"].(string)
	available, _ := p["available"].(bool)

	// Validation guarantees a non-empty array but not string elements;
	// non-string entries are rendered to their textual form.
	raw, _ := p["ingredients"].([]any)
	ingredients := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			ingredients = append(ingredients, s)
			continue
		}
		ingredients = append(ingredients, fmt.Sprint(v))
	}

	return MenuItem{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    Category(category),
		Ingredients: ingredients,
		Available:   available,
	}
}
