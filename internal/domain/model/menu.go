package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state shared by a menu and its shopping list.
type Status string

const (
	StatusDraft Status = "draft"
	StatusFinal Status = "final"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusFinal
}

// Menu is a generated set of dish assignments.
type Menu struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// MenuItem is a persisted filled slot of a menu.
type MenuItem struct {
	ID       string   `json:"id"`
	MenuID   string   `json:"menuId"`
	MealType MealType `json:"mealType"`
	DishID   string   `json:"dishId"`
	Locked   bool     `json:"locked"`
	Cooked   bool     `json:"cooked"`
}

// ShoppingListLine is the quantity of one ingredient still needed after
// netting against fridge stock. Quantity is always strictly positive.
type ShoppingListLine struct {
	IngredientID string          `json:"ingredientId"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         Unit            `json:"unit"`
}

// ShoppingListItem is a persisted shopping list line.
type ShoppingListItem struct {
	ID           string          `json:"id"`
	IngredientID string          `json:"ingredientId"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         Unit            `json:"unit"`
	Bought       bool            `json:"bought"`
}

// ShoppingList belongs to exactly one menu.
type ShoppingList struct {
	ID        string             `json:"id"`
	MenuID    string             `json:"menuId"`
	Name      string             `json:"name"`
	Status    Status             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	Items     []ShoppingListItem `json:"items"`
}

// MenuItemDetail is a menu item with its dish name resolved.
type MenuItemDetail struct {
	MenuItem
	DishName string `json:"dishName"`
}

// ShoppingListItemDetail is a shopping list item with its ingredient name
// resolved.
type ShoppingListItemDetail struct {
	ShoppingListItem
	Name string `json:"name"`
}

// ShoppingListDetail is a shopping list with resolved item names.
type ShoppingListDetail struct {
	ID        string                   `json:"id"`
	MenuID    string                   `json:"menuId"`
	Name      string                   `json:"name"`
	Status    Status                   `json:"status"`
	CreatedAt time.Time                `json:"createdAt"`
	Items     []ShoppingListItemDetail `json:"items"`
}

// MenuDetail groups a menu with its items and shopping list.
type MenuDetail struct {
	Menu         Menu                `json:"menu"`
	Items        []MenuItemDetail    `json:"items"`
	ShoppingList *ShoppingListDetail `json:"shoppingList"`
}
