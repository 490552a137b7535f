package repository

import (
	"context"

	"github.com/guttosm/menu-service/internal/circuitbreaker"
	"github.com/guttosm/menu-service/internal/domain/model"
)

// DishRepositoryWithCircuitBreaker wraps a dish repository with circuit breaker protection.
type DishRepositoryWithCircuitBreaker struct {
	repo           DishRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewDishRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewDishRepositoryWithCircuitBreaker(repo DishRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *DishRepositoryWithCircuitBreaker {
	return &DishRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

var _ DishRepositoryInterface = (*DishRepositoryWithCircuitBreaker)(nil)

func (r *DishRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Dish, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]model.Dish, error) {
		return r.repo.List(ctx)
	})
}

func (r *DishRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*model.Dish, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.Dish, error) {
		return r.repo.GetByID(ctx, id)
	})
}

func (r *DishRepositoryWithCircuitBreaker) Upsert(ctx context.Context, dish model.Dish) (*model.Dish, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.Dish, error) {
		return r.repo.Upsert(ctx, dish)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *DishRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// FridgeRepositoryWithCircuitBreaker wraps a fridge repository with circuit breaker protection.
type FridgeRepositoryWithCircuitBreaker struct {
	repo           FridgeRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewFridgeRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewFridgeRepositoryWithCircuitBreaker(repo FridgeRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *FridgeRepositoryWithCircuitBreaker {
	return &FridgeRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

var _ FridgeRepositoryInterface = (*FridgeRepositoryWithCircuitBreaker)(nil)

func (r *FridgeRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.FridgeEntry, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]model.FridgeEntry, error) {
		return r.repo.List(ctx)
	})
}

func (r *FridgeRepositoryWithCircuitBreaker) FindByIngredient(ctx context.Context, ingredientID string) (*model.FridgeEntry, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.FridgeEntry, error) {
		return r.repo.FindByIngredient(ctx, ingredientID)
	})
}

func (r *FridgeRepositoryWithCircuitBreaker) Upsert(ctx context.Context, entry model.FridgeEntry) (*model.FridgeEntry, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.FridgeEntry, error) {
		return r.repo.Upsert(ctx, entry)
	})
}

func (r *FridgeRepositoryWithCircuitBreaker) DeleteByIngredient(ctx context.Context, ingredientID string) (bool, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (bool, error) {
		return r.repo.DeleteByIngredient(ctx, ingredientID)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *FridgeRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// MenuRepositoryWithCircuitBreaker wraps a menu repository with circuit breaker protection.
type MenuRepositoryWithCircuitBreaker struct {
	repo           MenuRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewMenuRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewMenuRepositoryWithCircuitBreaker(repo MenuRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *MenuRepositoryWithCircuitBreaker {
	return &MenuRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

var _ MenuRepositoryInterface = (*MenuRepositoryWithCircuitBreaker)(nil)

func (r *MenuRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Menu, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]model.Menu, error) {
		return r.repo.List(ctx)
	})
}

func (r *MenuRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (*model.Menu, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.Menu, error) {
		return r.repo.Get(ctx, id)
	})
}

func (r *MenuRepositoryWithCircuitBreaker) ListItems(ctx context.Context, menuID string) ([]model.MenuItem, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]model.MenuItem, error) {
		return r.repo.ListItems(ctx, menuID)
	})
}

func (r *MenuRepositoryWithCircuitBreaker) Create(ctx context.Context, menu model.Menu, items []model.MenuItem) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, menu, items)
	})
}

func (r *MenuRepositoryWithCircuitBreaker) UpdateName(ctx context.Context, id, name string) (*model.Menu, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.Menu, error) {
		return r.repo.UpdateName(ctx, id, name)
	})
}

func (r *MenuRepositoryWithCircuitBreaker) ReplaceItems(ctx context.Context, menuID string, removeIDs []string, add []model.MenuItem) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.ReplaceItems(ctx, menuID, removeIDs, add)
	})
}

func (r *MenuRepositoryWithCircuitBreaker) SetItemCooked(ctx context.Context, menuID, itemID string, cooked bool) (*model.MenuItem, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.MenuItem, error) {
		return r.repo.SetItemCooked(ctx, menuID, itemID, cooked)
	})
}

func (r *MenuRepositoryWithCircuitBreaker) SetItemsLocked(ctx context.Context, menuID string, itemIDs []string, locked bool) ([]model.MenuItem, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]model.MenuItem, error) {
		return r.repo.SetItemsLocked(ctx, menuID, itemIDs, locked)
	})
}

func (r *MenuRepositoryWithCircuitBreaker) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Menu, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.Menu, error) {
		return r.repo.UpdateStatus(ctx, id, status)
	})
}

func (r *MenuRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) (bool, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (bool, error) {
		return r.repo.Delete(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *MenuRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ShoppingListRepositoryWithCircuitBreaker wraps a shopping list repository with circuit breaker protection.
type ShoppingListRepositoryWithCircuitBreaker struct {
	repo           ShoppingListRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewShoppingListRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewShoppingListRepositoryWithCircuitBreaker(repo ShoppingListRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ShoppingListRepositoryWithCircuitBreaker {
	return &ShoppingListRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

var _ ShoppingListRepositoryInterface = (*ShoppingListRepositoryWithCircuitBreaker)(nil)

func (r *ShoppingListRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.ShoppingList, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]model.ShoppingList, error) {
		return r.repo.List(ctx)
	})
}

func (r *ShoppingListRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (*model.ShoppingList, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.ShoppingList, error) {
		return r.repo.Get(ctx, id)
	})
}

func (r *ShoppingListRepositoryWithCircuitBreaker) GetByMenuID(ctx context.Context, menuID string) (*model.ShoppingList, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.ShoppingList, error) {
		return r.repo.GetByMenuID(ctx, menuID)
	})
}

func (r *ShoppingListRepositoryWithCircuitBreaker) Create(ctx context.Context, list model.ShoppingList) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, list)
	})
}

func (r *ShoppingListRepositoryWithCircuitBreaker) Replace(ctx context.Context, id, name string, items []model.ShoppingListItem) (*model.ShoppingList, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.ShoppingList, error) {
		return r.repo.Replace(ctx, id, name, items)
	})
}

func (r *ShoppingListRepositoryWithCircuitBreaker) SetItemBought(ctx context.Context, listID, itemID string, bought bool) (*model.ShoppingListItem, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.ShoppingListItem, error) {
		return r.repo.SetItemBought(ctx, listID, itemID, bought)
	})
}

func (r *ShoppingListRepositoryWithCircuitBreaker) UpdateStatusByMenu(ctx context.Context, menuID string, status model.Status) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.UpdateStatusByMenu(ctx, menuID, status)
	})
}

func (r *ShoppingListRepositoryWithCircuitBreaker) DeleteByMenu(ctx context.Context, menuID string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.DeleteByMenu(ctx, menuID)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ShoppingListRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
