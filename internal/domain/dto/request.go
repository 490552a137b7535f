// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/menu-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func fieldError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// MenuFilters narrows the dishes considered for ranked fills.
type MenuFilters struct {
	// IncludeTags keeps only dishes carrying at least one of the tags.
	IncludeTags []string `json:"includeTags" example:"vegan,quick"`
} // @name MenuFilters

// GenerateMenuRequest is the body of the generate and regenerate endpoints.
//
// @Description Request to generate or regenerate a menu
type GenerateMenuRequest struct {
	// Name of the menu. The shopping list is named after it.
	Name string `json:"name" example:"Week 12"`
	// TotalSlots maps a meal type to the number of dishes wanted.
	TotalSlots          map[string]int `json:"totalSlots" binding:"required"`
	Filters             *MenuFilters   `json:"filters,omitempty"`
	RequiredDishes      []string       `json:"requiredDishes,omitempty"`
	RequiredIngredients []string       `json:"requiredIngredients,omitempty"`
} // @name GenerateMenuRequest

// Validate checks that every slot key names a known meal type, and that no
// two keys name the same one once case and whitespace are ignored.
func (r *GenerateMenuRequest) Validate() error {
	seen := make(map[model.MealType]string, len(r.TotalSlots))
	for key := range r.TotalSlots {
		mt, err := model.ParseMealType(key)
		if err != nil {
			return fieldError("totalSlots", "unknown meal type "+key)
		}
		if other, dup := seen[mt]; dup {
			return fieldError("totalSlots", "duplicate meal type "+string(mt)+" ("+other+", "+key+")")
		}
		seen[mt] = key
	}
	return nil
}

// SlotRequest converts TotalSlots into the domain slot request.
func (r *GenerateMenuRequest) SlotRequest() model.SlotRequest {
	slots := make(model.SlotRequest, len(r.TotalSlots))
	for key, count := range r.TotalSlots {
		if mt, err := model.ParseMealType(key); err == nil {
			slots[mt] = count
		}
	}
	return slots
}

// IncludeTags returns the tag filter, or nil when none was given.
func (r *GenerateMenuRequest) IncludeTags() []string {
	if r.Filters == nil {
		return nil
	}
	return r.Filters.IncludeTags
}

// UpdateItemCookedRequest toggles the cooked flag of a menu item.
type UpdateItemCookedRequest struct {
	Cooked *bool `json:"cooked" binding:"required" example:"true"`
} // @name UpdateItemCookedRequest

// Validate performs custom validation on the request.
func (r *UpdateItemCookedRequest) Validate() error {
	if r.Cooked == nil {
		return fieldError("cooked", "is required")
	}
	return nil
}

// LockItemsRequest locks or unlocks a set of menu items.
type LockItemsRequest struct {
	ItemIDs []string `json:"itemIds" binding:"required"`
	// Locked defaults to true.
	Locked *bool `json:"locked,omitempty" example:"true"`
} // @name LockItemsRequest

// Validate performs custom validation on the request.
func (r *LockItemsRequest) Validate() error {
	if len(r.ItemIDs) == 0 {
		return fieldError("itemIds", "must not be empty")
	}
	for _, id := range r.ItemIDs {
		if strings.TrimSpace(id) == "" {
			return fieldError("itemIds", "must not contain blank ids")
		}
	}
	return nil
}

// LockValue returns the requested lock state.
func (r *LockItemsRequest) LockValue() bool {
	return r.Locked == nil || *r.Locked
}

// UpdateStatusRequest moves a menu between draft and final.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"final"`
} // @name UpdateStatusRequest

// Validate performs custom validation on the request.
func (r *UpdateStatusRequest) Validate() error {
	if !model.Status(strings.ToLower(strings.TrimSpace(r.Status))).Valid() {
		return fieldError("status", "must be draft or final")
	}
	return nil
}

// StatusValue returns the normalized status.
func (r *UpdateStatusRequest) StatusValue() model.Status {
	return model.Status(strings.ToLower(strings.TrimSpace(r.Status)))
}

// DishIngredientRequest is one ingredient line of a dish.
type DishIngredientRequest struct {
	IngredientID  string          `json:"ingredientId" binding:"required" example:"tomato"`
	Name          string          `json:"name,omitempty" example:"Tomato"`
	QtyPerServing decimal.Decimal `json:"qtyPerServing" swaggertype:"string" example:"150"`
	Unit          string          `json:"unit,omitempty" example:"g"`
} // @name DishIngredientRequest

// UpsertDishRequest creates or replaces a dish.
type UpsertDishRequest struct {
	Name        string                  `json:"name" binding:"required" example:"Tomato soup"`
	MealType    string                  `json:"mealType" binding:"required" example:"lunch"`
	IsActive    *bool                   `json:"isActive,omitempty" example:"true"`
	Tags        []string                `json:"tags,omitempty"`
	Ingredients []DishIngredientRequest `json:"ingredients"`
} // @name UpsertDishRequest

// Validate performs custom validation on the request.
func (r *UpsertDishRequest) Validate() error {
	if _, err := model.ParseMealType(r.MealType); err != nil {
		return fieldError("mealType", "unknown meal type "+r.MealType)
	}
	for _, ing := range r.Ingredients {
		if ing.Unit == "" {
			continue
		}
		if _, err := model.ParseUnit(ing.Unit); err != nil {
			return fieldError("ingredients.unit", "unknown unit "+ing.Unit)
		}
	}
	return nil
}

// ToModel converts the request into a dish with the given ID. Call Validate
// first.
func (r *UpsertDishRequest) ToModel(id string) model.Dish {
	mt, _ := model.ParseMealType(r.MealType)
	dish := model.Dish{
		ID:          id,
		Name:        r.Name,
		MealType:    mt,
		IsActive:    r.IsActive == nil || *r.IsActive,
		Tags:        r.Tags,
		Ingredients: make([]model.DishIngredient, 0, len(r.Ingredients)),
	}
	for _, ing := range r.Ingredients {
		var unit model.Unit
		if ing.Unit != "" {
			unit, _ = model.ParseUnit(ing.Unit)
		}
		dish.Ingredients = append(dish.Ingredients, model.DishIngredient{
			IngredientID:  ing.IngredientID,
			Name:          ing.Name,
			QtyPerServing: ing.QtyPerServing,
			Unit:          unit,
		})
	}
	return dish
}

// UpsertFridgeEntryRequest sets the stock of an ingredient. A zero quantity
// removes it from the fridge.
type UpsertFridgeEntryRequest struct {
	Name     string           `json:"name,omitempty" example:"Tomato"`
	Quantity *decimal.Decimal `json:"quantity" swaggertype:"string" example:"500"`
	Unit     string           `json:"unit,omitempty" example:"g"`
} // @name UpsertFridgeEntryRequest

// Validate performs custom validation on the request.
func (r *UpsertFridgeEntryRequest) Validate() error {
	if r.Quantity == nil {
		return fieldError("quantity", "is required")
	}
	if r.Quantity.IsNegative() {
		return fieldError("quantity", "must not be negative")
	}
	if r.Unit != "" {
		if _, err := model.ParseUnit(r.Unit); err != nil {
			return fieldError("unit", "unknown unit "+r.Unit)
		}
	}
	return nil
}

// ToModel converts the request into a fridge entry. Call Validate first.
func (r *UpsertFridgeEntryRequest) ToModel(ingredientID string) model.FridgeEntry {
	entry := model.FridgeEntry{IngredientID: ingredientID, Name: r.Name}
	if r.Quantity != nil {
		entry.Quantity = *r.Quantity
	}
	if r.Unit != "" {
		entry.Unit, _ = model.ParseUnit(r.Unit)
	}
	return entry
}

// SetItemBoughtRequest toggles the bought flag of a shopping list item.
type SetItemBoughtRequest struct {
	Bought *bool `json:"bought" binding:"required" example:"true"`
} // @name SetItemBoughtRequest

// Validate performs custom validation on the request.
func (r *SetItemBoughtRequest) Validate() error {
	if r.Bought == nil {
		return fieldError("bought", "is required")
	}
	return nil
}
