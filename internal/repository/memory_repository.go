package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/guttosm/menu-service/internal/domain/model"
)

// In-memory repositories back the service when MongoDB is disabled. They are
// safe for concurrent use and hand out copies, never internal state.

// MemoryDishRepository provides in-memory dish storage.
type MemoryDishRepository struct {
	mu     sync.RWMutex
	dishes map[string]model.Dish
}

// NewMemoryDishRepository creates a dish repository seeded with dishes.
func NewMemoryDishRepository(dishes ...model.Dish) *MemoryDishRepository {
	r := &MemoryDishRepository{dishes: make(map[string]model.Dish, len(dishes))}
	for _, d := range dishes {
		r.dishes[d.ID] = cloneDish(d)
	}
	return r
}

var _ DishRepositoryInterface = (*MemoryDishRepository)(nil)

func cloneDish(d model.Dish) model.Dish {
	out := d
	out.Tags = append([]string(nil), d.Tags...)
	out.Ingredients = append([]model.DishIngredient(nil), d.Ingredients...)
	return out
}

// List returns every dish ordered by name.
func (r *MemoryDishRepository) List(_ context.Context) ([]model.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dishes := make([]model.Dish, 0, len(r.dishes))
	for _, d := range r.dishes {
		dishes = append(dishes, cloneDish(d))
	}
	sort.Slice(dishes, func(i, j int) bool {
		if dishes[i].Name != dishes[j].Name {
			return dishes[i].Name < dishes[j].Name
		}
		return dishes[i].ID < dishes[j].ID
	})
	return dishes, nil
}

// GetByID returns the dish with the given ID.
func (r *MemoryDishRepository) GetByID(_ context.Context, id string) (*model.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.dishes[id]
	if !ok {
		return nil, nil
	}
	out := cloneDish(d)
	return &out, nil
}

// Upsert stores the dish.
func (r *MemoryDishRepository) Upsert(_ context.Context, dish model.Dish) (*model.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dishes[dish.ID] = cloneDish(dish)
	out := cloneDish(dish)
	return &out, nil
}

// MemoryFridgeRepository provides in-memory fridge storage keyed by ingredient.
type MemoryFridgeRepository struct {
	mu      sync.RWMutex
	entries map[string]model.FridgeEntry
}

// NewMemoryFridgeRepository creates a fridge repository seeded with entries.
func NewMemoryFridgeRepository(entries ...model.FridgeEntry) *MemoryFridgeRepository {
	r := &MemoryFridgeRepository{entries: make(map[string]model.FridgeEntry, len(entries))}
	for _, e := range entries {
		r.entries[e.IngredientID] = e
	}
	return r
}

var _ FridgeRepositoryInterface = (*MemoryFridgeRepository)(nil)

// List returns all entries ordered by name.
func (r *MemoryFridgeRepository) List(_ context.Context) ([]model.FridgeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]model.FridgeEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].IngredientID < entries[j].IngredientID
	})
	return entries, nil
}

// FindByIngredient returns the entry of an ingredient.
func (r *MemoryFridgeRepository) FindByIngredient(_ context.Context, ingredientID string) (*model.FridgeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[ingredientID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// Upsert sets the stock of an ingredient, keeping the existing entry ID.
func (r *MemoryFridgeRepository) Upsert(_ context.Context, entry model.FridgeEntry) (*model.FridgeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[entry.IngredientID]; ok {
		entry.ID = existing.ID
	}
	r.entries[entry.IngredientID] = entry
	return &entry, nil
}

// DeleteByIngredient removes the entry of an ingredient.
func (r *MemoryFridgeRepository) DeleteByIngredient(_ context.Context, ingredientID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[ingredientID]
	delete(r.entries, ingredientID)
	return ok, nil
}

// MemoryMenuRepository provides in-memory menu storage.
type MemoryMenuRepository struct {
	mu    sync.RWMutex
	menus map[string]model.Menu
	items map[string][]model.MenuItem
}

// NewMemoryMenuRepository creates an empty menu repository.
func NewMemoryMenuRepository() *MemoryMenuRepository {
	return &MemoryMenuRepository{
		menus: make(map[string]model.Menu),
		items: make(map[string][]model.MenuItem),
	}
}

var _ MenuRepositoryInterface = (*MemoryMenuRepository)(nil)

// List returns all menus, newest first.
func (r *MemoryMenuRepository) List(_ context.Context) ([]model.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	menus := make([]model.Menu, 0, len(r.menus))
	for _, m := range r.menus {
		menus = append(menus, m)
	}
	sort.Slice(menus, func(i, j int) bool {
		return menus[i].CreatedAt.After(menus[j].CreatedAt)
	})
	return menus, nil
}

// Get returns the menu with the given ID.
func (r *MemoryMenuRepository) Get(_ context.Context, id string) (*model.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.menus[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// ListItems returns the items of a menu in insertion order.
func (r *MemoryMenuRepository) ListItems(_ context.Context, menuID string) ([]model.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.MenuItem{}, r.items[menuID]...), nil
}

// Create stores a menu and its items.
func (r *MemoryMenuRepository) Create(_ context.Context, menu model.Menu, items []model.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.menus[menu.ID] = menu
	r.items[menu.ID] = append([]model.MenuItem{}, items...)
	return nil
}

// UpdateName renames a menu.
func (r *MemoryMenuRepository) UpdateName(_ context.Context, id, name string) (*model.Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.menus[id]
	if !ok {
		return nil, nil
	}
	m.Name = name
	r.menus[id] = m
	return &m, nil
}

// UpdateStatus sets the lifecycle status of a menu.
func (r *MemoryMenuRepository) UpdateStatus(_ context.Context, id string, status model.Status) (*model.Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.menus[id]
	if !ok {
		return nil, nil
	}
	m.Status = status
	r.menus[id] = m
	return &m, nil
}

// ReplaceItems deletes removeIDs and appends add.
func (r *MemoryMenuRepository) ReplaceItems(_ context.Context, menuID string, removeIDs []string, add []model.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	remove := make(map[string]struct{}, len(removeIDs))
	for _, id := range removeIDs {
		remove[id] = struct{}{}
	}

	kept := make([]model.MenuItem, 0, len(r.items[menuID])+len(add))
	for _, item := range r.items[menuID] {
		if _, drop := remove[item.ID]; !drop {
			kept = append(kept, item)
		}
	}
	r.items[menuID] = append(kept, add...)
	return nil
}

// SetItemCooked toggles the cooked flag of one item.
func (r *MemoryMenuRepository) SetItemCooked(_ context.Context, menuID, itemID string, cooked bool) (*model.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.items[menuID]
	for i := range items {
		if items[i].ID == itemID {
			items[i].Cooked = cooked
			item := items[i]
			return &item, nil
		}
	}
	return nil, nil
}

// SetItemsLocked sets the locked flag on the given items and returns them.
func (r *MemoryMenuRepository) SetItemsLocked(_ context.Context, menuID string, itemIDs []string, locked bool) ([]model.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = struct{}{}
	}

	updated := make([]model.MenuItem, 0, len(itemIDs))
	items := r.items[menuID]
	for i := range items {
		if _, ok := wanted[items[i].ID]; ok {
			items[i].Locked = locked
			updated = append(updated, items[i])
		}
	}
	return updated, nil
}

// Delete removes a menu and its items.
func (r *MemoryMenuRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.menus[id]
	delete(r.menus, id)
	delete(r.items, id)
	return ok, nil
}

// MemoryShoppingListRepository provides in-memory shopping list storage.
type MemoryShoppingListRepository struct {
	mu    sync.RWMutex
	lists map[string]model.ShoppingList
}

// NewMemoryShoppingListRepository creates an empty shopping list repository.
func NewMemoryShoppingListRepository() *MemoryShoppingListRepository {
	return &MemoryShoppingListRepository{lists: make(map[string]model.ShoppingList)}
}

var _ ShoppingListRepositoryInterface = (*MemoryShoppingListRepository)(nil)

func cloneShoppingList(l model.ShoppingList) model.ShoppingList {
	out := l
	out.Items = append([]model.ShoppingListItem{}, l.Items...)
	return out
}

// List returns all shopping lists, newest first.
func (r *MemoryShoppingListRepository) List(_ context.Context) ([]model.ShoppingList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lists := make([]model.ShoppingList, 0, len(r.lists))
	for _, l := range r.lists {
		lists = append(lists, cloneShoppingList(l))
	}
	sort.Slice(lists, func(i, j int) bool {
		return lists[i].CreatedAt.After(lists[j].CreatedAt)
	})
	return lists, nil
}

// Get returns the shopping list with the given ID.
func (r *MemoryShoppingListRepository) Get(_ context.Context, id string) (*model.ShoppingList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.lists[id]
	if !ok {
		return nil, nil
	}
	out := cloneShoppingList(l)
	return &out, nil
}

// GetByMenuID returns the shopping list owned by a menu.
func (r *MemoryShoppingListRepository) GetByMenuID(_ context.Context, menuID string) (*model.ShoppingList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.lists {
		if l.MenuID == menuID {
			out := cloneShoppingList(l)
			return &out, nil
		}
	}
	return nil, nil
}

// Create stores a shopping list.
func (r *MemoryShoppingListRepository) Create(_ context.Context, list model.ShoppingList) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lists[list.ID] = cloneShoppingList(list)
	return nil
}

// Replace renames the list and swaps its items.
func (r *MemoryShoppingListRepository) Replace(_ context.Context, id, name string, items []model.ShoppingListItem) (*model.ShoppingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.lists[id]
	if !ok {
		return nil, nil
	}
	l.Name = name
	l.Items = append([]model.ShoppingListItem{}, items...)
	r.lists[id] = l
	out := cloneShoppingList(l)
	return &out, nil
}

// SetItemBought toggles the bought flag of one item.
func (r *MemoryShoppingListRepository) SetItemBought(_ context.Context, listID, itemID string, bought bool) (*model.ShoppingListItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.lists[listID]
	if !ok {
		return nil, nil
	}
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			l.Items[i].Bought = bought
			item := l.Items[i]
			return &item, nil
		}
	}
	return nil, nil
}

// UpdateStatusByMenu mirrors a menu status onto its shopping list.
func (r *MemoryShoppingListRepository) UpdateStatusByMenu(_ context.Context, menuID string, status model.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, l := range r.lists {
		if l.MenuID == menuID {
			l.Status = status
			r.lists[id] = l
		}
	}
	return nil
}

// DeleteByMenu removes the shopping list owned by a menu.
func (r *MemoryShoppingListRepository) DeleteByMenu(_ context.Context, menuID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, l := range r.lists {
		if l.MenuID == menuID {
			delete(r.lists, id)
		}
	}
	return nil
}
