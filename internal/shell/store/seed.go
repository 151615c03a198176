package store

import "github.com/artpar/menud/internal/core/domain"

// DefaultMenu returns the six menu items the service starts with. Ids are
// left unset; the store assigns them on insert.
func DefaultMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{
			Name:        "Bruschetta",
			Description: "Grilled bread topped with tomato, garlic and fresh basil",
			Price:       6.5,
			Category:    domain.CategoryAppetizer,
			Ingredients: []string{"bread", "tomato", "garlic", "basil", "olive oil"},
			Available:   true,
		},
		{
			Name:        "French Onion Soup",
			Description: "Caramelized onion broth with melted gruyere crouton",
			Price:       7.25,
			Category:    domain.CategoryAppetizer,
			Ingredients: []string{"onion", "beef broth", "gruyere", "baguette"},
			Available:   true,
		},
		{
			Name:        "Grilled Salmon",
			Description: "Atlantic salmon fillet with lemon butter and seasonal vegetables",
			Price:       18.9,
			Category:    domain.CategoryEntree,
			Ingredients: []string{"salmon", "lemon", "butter", "asparagus"},
			Available:   true,
		},
		{
			Name:        "Margherita Pizza",
			Description: "Wood-fired pizza with tomato, mozzarella and basil",
			Price:       13.5,
			Category:    domain.CategoryEntree,
			Ingredients: []string{"dough", "tomato", "mozzarella", "basil"},
			Available:   true,
		},
		{
			Name:        "Tiramisu",
			Description: "Espresso-soaked ladyfingers layered with mascarpone cream",
			Price:       8.0,
			Category:    domain.CategoryDessert,
			Ingredients: []string{"ladyfingers", "espresso", "mascarpone", "cocoa"},
			Available:   true,
		},
		{
			Name:        "Fresh Lemonade",
			Description: "House-squeezed lemonade over ice with a sprig of mint",
			Price:       4.25,
			Category:    domain.CategoryBeverage,
			Ingredients: []string{"lemon", "sugar", "water", "mint"},
			Available:   true,
		},
	}
}
