package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Ingredient is an entry of the ingredient library.
type Ingredient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Unit     Unit   `json:"unit"`
	IsActive bool   `json:"isActive"`
}

// DishIngredient is the per-serving requirement of one ingredient in a dish.
type DishIngredient struct {
	IngredientID  string          `json:"ingredientId"`
	Name          string          `json:"name,omitempty"`
	QtyPerServing decimal.Decimal `json:"qtyPerServing"`
	Unit          Unit            `json:"unit,omitempty"`
}

// Dish is a catalog dish belonging to exactly one meal type.
type Dish struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	MealType    MealType         `json:"mealType"`
	IsActive    bool             `json:"isActive"`
	Tags        []string         `json:"tags"`
	Ingredients []DishIngredient `json:"ingredients"`
}

// HasIngredient reports whether the dish uses the given ingredient.
func (d Dish) HasIngredient(ingredientID string) bool {
	for _, ing := range d.Ingredients {
		if ing.IngredientID == ingredientID {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the dish carries at least one of the tags.
// Tags are compared case-insensitively.
func (d Dish) HasAnyTag(tags map[string]struct{}) bool {
	for _, tag := range d.Tags {
		if _, ok := tags[strings.ToLower(tag)]; ok {
			return true
		}
	}
	return false
}

// DishIndex maps dish IDs to dishes.
type DishIndex map[string]Dish

// NewDishIndex builds an index over the given dishes. Later duplicates win.
func NewDishIndex(dishes []Dish) DishIndex {
	idx := make(DishIndex, len(dishes))
	for _, d := range dishes {
		idx[d.ID] = d
	}
	return idx
}

// FridgeEntry is the stock of one ingredient. A zero quantity is the same as
// having no entry at all.
type FridgeEntry struct {
	ID           string          `json:"id"`
	IngredientID string          `json:"ingredientId"`
	Name         string          `json:"name,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         Unit            `json:"unit,omitempty"`
}
