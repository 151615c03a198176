package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// validPayload returns a payload that passes every rule. Tests mutate a copy.
func validPayload() map[string]any {
	return map[string]any{
		"name":        "Garden Salad",
		"description": "Crisp greens with house dressing",
		"price":       8.5,
		"category":    "appetizer",
		"ingredients": []any{"lettuce", "tomato"},
		"available":   true,
	}
}

// =============================================================================
// Whole-Payload Tests
// =============================================================================

func TestValidateMenuItemPayload_Valid(t *testing.T) {
	messages := ValidateMenuItemPayload(validPayload())
	assert.Empty(t, messages)
}

func TestValidateMenuItemPayload_AvailableOptional(t *testing.T) {
	p := validPayload()
	delete(p, "available")

	messages := ValidateMenuItemPayload(p)
	assert.Empty(t, messages)
}

func TestValidateMenuItemPayload_EmptyPayload(t *testing.T) {
	messages := ValidateMenuItemPayload(map[string]any{})

	// One message per required-field rule, in rule order. The optional
	// available rule does not fire for an absent key.
	assert.Equal(t, []string{
		MsgNameInvalid,
		MsgDescriptionInvalid,
		MsgPriceInvalid,
		MsgCategoryInvalid,
		MsgIngredientsInvalid,
	}, messages)
}

func TestValidateMenuItemPayload_CollectsAllFailures(t *testing.T) {
	p := validPayload()
	p["name"] = "ab"
	p["price"] = -5.0
	p["category"] = "snack"

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{
		MsgNameInvalid,
		MsgPriceInvalid,
		MsgCategoryInvalid,
	}, messages)
}

// =============================================================================
// Name Rule Tests
// =============================================================================

func TestValidateMenuItemPayload_NameTooShort(t *testing.T) {
	p := validPayload()
	p["name"] = "ab"

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{MsgNameInvalid}, messages)
	assert.Contains(t, messages[0], "at least 3 characters")
}

func TestValidateMenuItemPayload_NameWrongType(t *testing.T) {
	p := validPayload()
	p["name"] = 42.0

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{MsgNameInvalid}, messages)
}

func TestValidateMenuItemPayload_NameExactMinimum(t *testing.T) {
	p := validPayload()
	p["name"] = "Pho"

	assert.Empty(t, ValidateMenuItemPayload(p))
}

// =============================================================================
// Description Rule Tests
// =============================================================================

func TestValidateMenuItemPayload_DescriptionTooShort(t *testing.T) {
	p := validPayload()
	p["description"] = "short"

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{MsgDescriptionInvalid}, messages)
	assert.Contains(t, messages[0], "at least 10 characters")
}

func TestValidateMenuItemPayload_DescriptionMissing(t *testing.T) {
	p := validPayload()
	delete(p, "description")

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{MsgDescriptionInvalid}, messages)
}

// =============================================================================
// Price Rule Tests
// =============================================================================

func TestValidateMenuItemPayload_PriceNegative(t *testing.T) {
	p := validPayload()
	p["price"] = -5.0

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{MsgPriceInvalid}, messages)
	assert.Contains(t, messages[0], "greater than 0")
}

func TestValidateMenuItemPayload_PriceZero(t *testing.T) {
	p := validPayload()
	p["price"] = 0.0

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{MsgPriceInvalid}, messages)
}

func TestValidateMenuItemPayload_PriceWrongType(t *testing.T) {
	p := validPayload()
	p["price"] = "4.99"

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{MsgPriceInvalid}, messages)
}

// =============================================================================
// Category Rule Tests
// =============================================================================

func TestValidateMenuItemPayload_CategoryUnknown(t *testing.T) {
	p := validPayload()
	p["category"] = "snack"

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{"Category must be appetizer, entree, dessert, or beverage"}, messages)
}

func TestValidateMenuItemPayload_CategoryCaseSensitive(t *testing.T) {
	p := validPayload()
	p["category"] = "Appetizer"

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{MsgCategoryInvalid}, messages)
}

func TestValidateMenuItemPayload_CategoryAllValid(t *testing.T) {
	for _, category := range []string{"appetizer", "entree", "dessert", "beverage"} {
		t.Run(category, func(t *testing.T) {
			p := validPayload()
			p["category"] = category

			assert.Empty(t, ValidateMenuItemPayload(p))
		})
	}
}

// =============================================================================
// Ingredients Rule Tests
// =============================================================================

func TestValidateMenuItemPayload_IngredientsEmpty(t *testing.T) {
	p := validPayload()
	p["ingredients"] = []any{}

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{MsgIngredientsInvalid}, messages)
}

func TestValidateMenuItemPayload_IngredientsWrongType(t *testing.T) {
	p := validPayload()
	p["ingredients"] = "lettuce"

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{MsgIngredientsInvalid}, messages)
}

// =============================================================================
// Available Rule Tests
// =============================================================================

func TestValidateMenuItemPayload_AvailableWrongType(t *testing.T) {
	p := validPayload()
	p["available"] = "yes"

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{MsgAvailableInvalid}, messages)
}

func TestValidateMenuItemPayload_AvailableNull(t *testing.T) {
	p := validPayload()
	p["available"] = nil // JSON null is present but not a boolean

	messages := ValidateMenuItemPayload(p)
	assert.Equal(t, []string{MsgAvailableInvalid}, messages)
}
