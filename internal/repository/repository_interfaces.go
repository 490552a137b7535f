// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/menu-service/internal/domain/model"
)

// Lookups return (nil, nil) when the record does not exist.

// DishRepositoryInterface defines the interface for dish catalog operations.
type DishRepositoryInterface interface {
	List(ctx context.Context) ([]model.Dish, error)
	GetByID(ctx context.Context, id string) (*model.Dish, error)
	Upsert(ctx context.Context, dish model.Dish) (*model.Dish, error)
}

// FridgeRepositoryInterface defines the interface for fridge stock operations.
type FridgeRepositoryInterface interface {
	List(ctx context.Context) ([]model.FridgeEntry, error)
	FindByIngredient(ctx context.Context, ingredientID string) (*model.FridgeEntry, error)
	Upsert(ctx context.Context, entry model.FridgeEntry) (*model.FridgeEntry, error)
	DeleteByIngredient(ctx context.Context, ingredientID string) (bool, error)
}

// MenuRepositoryInterface defines the interface for menu and menu item operations.
type MenuRepositoryInterface interface {
	List(ctx context.Context) ([]model.Menu, error)
	Get(ctx context.Context, id string) (*model.Menu, error)
	ListItems(ctx context.Context, menuID string) ([]model.MenuItem, error)
	Create(ctx context.Context, menu model.Menu, items []model.MenuItem) error
	UpdateName(ctx context.Context, id, name string) (*model.Menu, error)
	ReplaceItems(ctx context.Context, menuID string, removeIDs []string, add []model.MenuItem) error
	SetItemCooked(ctx context.Context, menuID, itemID string, cooked bool) (*model.MenuItem, error)
	SetItemsLocked(ctx context.Context, menuID string, itemIDs []string, locked bool) ([]model.MenuItem, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Menu, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ShoppingListRepositoryInterface defines the interface for shopping list operations.
type ShoppingListRepositoryInterface interface {
	List(ctx context.Context) ([]model.ShoppingList, error)
	Get(ctx context.Context, id string) (*model.ShoppingList, error)
	GetByMenuID(ctx context.Context, menuID string) (*model.ShoppingList, error)
	Create(ctx context.Context, list model.ShoppingList) error
	Replace(ctx context.Context, id, name string, items []model.ShoppingListItem) (*model.ShoppingList, error)
	SetItemBought(ctx context.Context, listID, itemID string, bought bool) (*model.ShoppingListItem, error)
	UpdateStatusByMenu(ctx context.Context, menuID string, status model.Status) error
	DeleteByMenu(ctx context.Context, menuID string) error
}
