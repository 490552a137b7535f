package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/metrics"
	"github.com/guttosm/menu-service/internal/repository"
	"github.com/guttosm/menu-service/internal/service/cache"
)

const (
	unknownDish       = "Unknown dish"
	unknownIngredient = "Unknown ingredient"
	shoppingListWord  = "shopping list"
	menuCacheName     = "menus"
)

// MenuService persists generated menus and manages their lifecycle.
type MenuService interface {
	List(ctx context.Context) ([]model.Menu, error)
	Get(ctx context.Context, id string) (*model.MenuDetail, error)
	Generate(ctx context.Context, req GenerationRequest) (*model.MenuDetail, error)
	Regenerate(ctx context.Context, id string, req GenerationRequest) (*model.MenuDetail, error)
	UpdateItemCooked(ctx context.Context, menuID, itemID string, cooked bool) (*model.MenuItemDetail, error)
	LockItems(ctx context.Context, menuID string, itemIDs []string, locked bool) ([]model.MenuItemDetail, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Menu, error)
	Delete(ctx context.Context, id string) error
}

// MenuServiceOption configures a MenuServiceImpl.
type MenuServiceOption func(*MenuServiceImpl)

// MenuServiceImpl implements MenuService. Writes spanning a menu, its items
// and its shopping list are applied in sequence without a transaction.
type MenuServiceImpl struct {
	menus     repository.MenuRepositoryInterface
	lists     repository.ShoppingListRepositoryInterface
	catalog   CatalogService
	generator MenuGenerator
	details   cache.Cache[model.MenuDetail]
	newID     func() string
	clock     func() time.Time

	// version counts detail invalidations. Get only caches a detail when
	// no menu was written while it was being assembled.
	mu      sync.Mutex
	version uint64
}

// NewMenuService creates a menu service.
func NewMenuService(
	menus repository.MenuRepositoryInterface,
	lists repository.ShoppingListRepositoryInterface,
	catalog CatalogService,
	generator MenuGenerator,
	opts ...MenuServiceOption,
) *MenuServiceImpl {
	s := &MenuServiceImpl{
		menus:     menus,
		lists:     lists,
		catalog:   catalog,
		generator: generator,
		newID:     uuid.NewString,
		clock:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithMenuCache caches menu details by ID. Every write to a menu drops its
// entry; catalog edits are picked up once the entry expires.
func WithMenuCache(capacity int, ttl time.Duration) MenuServiceOption {
	return func(s *MenuServiceImpl) {
		if capacity > 0 && ttl > 0 {
			s.details = NewShardedCache[model.MenuDetail](menuCacheName, capacity, ttl, 16)
		}
	}
}

// WithMenuIDGenerator replaces the UUID generator for menus, items and lists.
func WithMenuIDGenerator(fn func() string) MenuServiceOption {
	return func(s *MenuServiceImpl) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock replaces the time source used for creation timestamps.
func WithClock(fn func() time.Time) MenuServiceOption {
	return func(s *MenuServiceImpl) {
		if fn != nil {
			s.clock = fn
		}
	}
}

// Stop releases the menu cache.
func (s *MenuServiceImpl) Stop() {
	if s.details != nil {
		s.details.Stop()
	}
}

func (s *MenuServiceImpl) configured() bool {
	return s.menus != nil && s.lists != nil && s.catalog != nil && s.generator != nil
}

func (s *MenuServiceImpl) List(ctx context.Context) ([]model.Menu, error) {
	if s.menus == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.menus.List(ctx)
}

func (s *MenuServiceImpl) Get(ctx context.Context, id string) (*model.MenuDetail, error) {
	if !s.configured() {
		return nil, ErrRepositoryNotConfigured
	}
	if s.details != nil {
		if detail, ok := s.details.Get(id); ok {
			return &detail, nil
		}
	}
	version := s.detailVersion()

	menu, err := s.menus.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, notFound(msgMenuNotFound)
	}
	items, err := s.menus.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	list, err := s.lists.GetByMenuID(ctx, id)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	detail := buildMenuDetail(*menu, items, list, newNameResolver(snapshot))
	s.storeDetail(id, version, *detail)
	return detail, nil
}

func (s *MenuServiceImpl) Generate(ctx context.Context, req GenerationRequest) (detail *model.MenuDetail, err error) {
	if !s.configured() {
		return nil, ErrRepositoryNotConfigured
	}
	start := time.Now()
	defer func() {
		metrics.RecordMenuGeneration("generate", time.Since(start), generationStatus(err))
	}()

	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	sel, err := s.generator.Generate(snapshot, req)
	if err != nil {
		return nil, err
	}

	menuID := s.newID()
	menuName := strings.TrimSpace(req.Name)
	createdAt := s.clock()

	menu := model.Menu{ID: menuID, Name: menuName, Status: model.StatusDraft, CreatedAt: createdAt}
	items := s.newMenuItems(menuID, sel.Slots)
	if err := s.menus.Create(ctx, menu, items); err != nil {
		return nil, err
	}

	list := model.ShoppingList{
		ID:        s.newID(),
		MenuID:    menuID,
		Name:      deriveShoppingListName(menuName),
		Status:    model.StatusDraft,
		CreatedAt: createdAt,
		Items:     s.newShoppingItems(sel.ShoppingList),
	}
	if err := s.lists.Create(ctx, list); err != nil {
		return nil, err
	}

	recordSelection(sel)
	log.Info().
		Str("menu_id", menuID).
		Int("items", len(items)).
		Int("shopping_items", len(list.Items)).
		Msg("Menu generated")

	return buildMenuDetail(menu, items, &list, newNameResolver(snapshot)), nil
}

func (s *MenuServiceImpl) Regenerate(ctx context.Context, id string, req GenerationRequest) (detail *model.MenuDetail, err error) {
	if !s.configured() {
		return nil, ErrRepositoryNotConfigured
	}
	start := time.Now()
	defer func() {
		metrics.RecordMenuGeneration("regenerate", time.Since(start), generationStatus(err))
	}()

	menu, err := s.menus.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	existingList, err := s.lists.GetByMenuID(ctx, id)
	if err != nil {
		return nil, err
	}
	if menu == nil || existingList == nil {
		return nil, notFound(msgMenuNotFound)
	}
	existing, err := s.menus.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	sel, err := s.generator.Regenerate(snapshot, req, existing)
	if err != nil {
		return nil, err
	}

	defer s.invalidate(id)

	newItems := s.newMenuItems(id, sel.Slots)
	removeIDs := make([]string, 0, len(sel.Replaced))
	for _, item := range sel.Replaced {
		removeIDs = append(removeIDs, item.ID)
	}
	if err := s.menus.ReplaceItems(ctx, id, removeIDs, newItems); err != nil {
		return nil, err
	}

	menuName := strings.TrimSpace(req.Name)
	list, err := s.lists.Replace(ctx, existingList.ID, deriveShoppingListName(menuName), s.newShoppingItems(sel.ShoppingList))
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, notFound(msgShoppingListNotFound)
	}
	updated, err := s.menus.UpdateName(ctx, id, menuName)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound(msgMenuNotFound)
	}

	recordSelection(sel)
	log.Info().
		Str("menu_id", id).
		Int("locked", len(sel.Locked)).
		Int("replaced", len(sel.Replaced)).
		Int("added", len(newItems)).
		Msg("Menu regenerated")

	items := make([]model.MenuItem, 0, len(sel.Locked)+len(newItems))
	items = append(items, sel.Locked...)
	items = append(items, newItems...)
	return buildMenuDetail(*updated, items, list, newNameResolver(snapshot)), nil
}

func (s *MenuServiceImpl) UpdateItemCooked(ctx context.Context, menuID, itemID string, cooked bool) (*model.MenuItemDetail, error) {
	if !s.configured() {
		return nil, ErrRepositoryNotConfigured
	}
	if err := s.requireMenu(ctx, menuID); err != nil {
		return nil, err
	}
	item, err := s.menus.SetItemCooked(ctx, menuID, itemID, cooked)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFound(msgMenuItemNotFound)
	}
	s.invalidate(menuID)

	names, err := s.resolver(ctx)
	if err != nil {
		return nil, err
	}
	detail := names.menuItem(*item)
	return &detail, nil
}

func (s *MenuServiceImpl) LockItems(ctx context.Context, menuID string, itemIDs []string, locked bool) ([]model.MenuItemDetail, error) {
	if !s.configured() {
		return nil, ErrRepositoryNotConfigured
	}
	if len(itemIDs) == 0 {
		return nil, validationError("itemIds must not be empty")
	}
	if err := s.requireMenu(ctx, menuID); err != nil {
		return nil, err
	}

	items, err := s.menus.ListItems(ctx, menuID)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(items))
	for _, item := range items {
		known[item.ID] = struct{}{}
	}
	for _, id := range itemIDs {
		if _, ok := known[id]; !ok {
			return nil, notFound(msgMenuItemNotFound)
		}
	}

	updated, err := s.menus.SetItemsLocked(ctx, menuID, itemIDs, locked)
	if err != nil {
		return nil, err
	}
	s.invalidate(menuID)

	names, err := s.resolver(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.MenuItemDetail, 0, len(updated))
	for _, item := range updated {
		out = append(out, names.menuItem(item))
	}
	return out, nil
}

// UpdateStatus moves a menu between draft and final. The shopping list
// follows the menu status.
func (s *MenuServiceImpl) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Menu, error) {
	if !s.configured() {
		return nil, ErrRepositoryNotConfigured
	}
	if !status.Valid() {
		return nil, validationError("unknown status %q", status)
	}
	menu, err := s.menus.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, notFound(msgMenuNotFound)
	}
	if menu.Status == status {
		return nil, conflict(msgStatusUnchanged)
	}

	updated, err := s.menus.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound(msgMenuNotFound)
	}
	if err := s.lists.UpdateStatusByMenu(ctx, id, status); err != nil {
		return nil, err
	}
	s.invalidate(id)
	return updated, nil
}

func (s *MenuServiceImpl) Delete(ctx context.Context, id string) error {
	if !s.configured() {
		return ErrRepositoryNotConfigured
	}
	deleted, err := s.menus.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound(msgMenuNotFound)
	}
	s.invalidate(id)
	return s.lists.DeleteByMenu(ctx, id)
}

func (s *MenuServiceImpl) requireMenu(ctx context.Context, id string) error {
	menu, err := s.menus.Get(ctx, id)
	if err != nil {
		return err
	}
	if menu == nil {
		return notFound(msgMenuNotFound)
	}
	return nil
}

func (s *MenuServiceImpl) resolver(ctx context.Context) (*nameResolver, error) {
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return newNameResolver(snapshot), nil
}

// Invalidate drops the cached detail of a menu.
func (s *MenuServiceImpl) Invalidate(menuID string) {
	s.invalidate(menuID)
}

func (s *MenuServiceImpl) invalidate(menuID string) {
	if s.details == nil {
		return
	}
	s.mu.Lock()
	s.version++
	s.details.Invalidate(menuID)
	s.mu.Unlock()
}

func (s *MenuServiceImpl) detailVersion() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *MenuServiceImpl) storeDetail(menuID string, version uint64, detail model.MenuDetail) {
	if s.details == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version != version {
		return
	}
	s.details.Set(menuID, detail)
}

func (s *MenuServiceImpl) newMenuItems(menuID string, slots []model.FilledSlot) []model.MenuItem {
	items := make([]model.MenuItem, 0, len(slots))
	for _, slot := range slots {
		items = append(items, model.MenuItem{
			ID:       s.newID(),
			MenuID:   menuID,
			MealType: slot.MealType,
			DishID:   slot.DishID,
		})
	}
	return items
}

func (s *MenuServiceImpl) newShoppingItems(lines []model.ShoppingListLine) []model.ShoppingListItem {
	items := make([]model.ShoppingListItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, model.ShoppingListItem{
			ID:           s.newID(),
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
		})
	}
	return items
}

// deriveShoppingListName names a shopping list after its menu unless the menu
// name already mentions a shopping list.
func deriveShoppingListName(menuName string) string {
	trimmed := strings.TrimSpace(menuName)
	if trimmed == "" {
		return shoppingListWord
	}
	if strings.Contains(strings.ToLower(trimmed), shoppingListWord) {
		return trimmed
	}
	return trimmed + " " + shoppingListWord
}

func generationStatus(err error) string {
	var domainErr *DomainError
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &domainErr):
		return strings.ToLower(string(domainErr.Code))
	default:
		return "error"
	}
}

func recordSelection(sel *Selection) {
	counts := make(map[model.MealType]int)
	for _, slot := range sel.Slots {
		counts[slot.MealType]++
	}
	for _, mt := range model.MealTypes {
		if counts[mt] > 0 {
			metrics.RecordFilledSlots(string(mt), counts[mt])
		}
	}
	metrics.RecordShoppingListSize(len(sel.ShoppingList))
}

// nameResolver resolves display names for dishes and ingredients. Ingredient
// names come from dish definitions first, then from fridge entries.
type nameResolver struct {
	dishes      map[string]string
	ingredients map[string]model.Ingredient
}

func newNameResolver(snapshot Snapshot) *nameResolver {
	r := &nameResolver{
		dishes:      make(map[string]string, len(snapshot.Dishes)),
		ingredients: make(map[string]model.Ingredient),
	}
	for _, d := range snapshot.Dishes {
		r.dishes[d.ID] = d.Name
		for _, ing := range d.Ingredients {
			if _, ok := r.ingredients[ing.IngredientID]; !ok {
				r.ingredients[ing.IngredientID] = model.Ingredient{ID: ing.IngredientID, Name: ing.Name, Unit: ing.Unit, IsActive: true}
			}
		}
	}
	for _, e := range snapshot.Fridge {
		if _, ok := r.ingredients[e.IngredientID]; !ok {
			r.ingredients[e.IngredientID] = model.Ingredient{ID: e.IngredientID, Name: e.Name, Unit: e.Unit, IsActive: true}
		}
	}
	return r
}

func (r *nameResolver) menuItem(item model.MenuItem) model.MenuItemDetail {
	name, ok := r.dishes[item.DishID]
	if !ok {
		name = unknownDish
	}
	return model.MenuItemDetail{MenuItem: item, DishName: name}
}

func (r *nameResolver) shoppingItem(item model.ShoppingListItem) model.ShoppingListItemDetail {
	detail := model.ShoppingListItemDetail{ShoppingListItem: item, Name: unknownIngredient}
	if ing, ok := r.ingredients[item.IngredientID]; ok {
		if ing.Name != "" {
			detail.Name = ing.Name
		}
		if ing.Unit != "" {
			detail.Unit = ing.Unit
		}
	}
	return detail
}

func (r *nameResolver) shoppingList(list model.ShoppingList) *model.ShoppingListDetail {
	detail := &model.ShoppingListDetail{
		ID:        list.ID,
		MenuID:    list.MenuID,
		Name:      list.Name,
		Status:    list.Status,
		CreatedAt: list.CreatedAt,
		Items:     make([]model.ShoppingListItemDetail, 0, len(list.Items)),
	}
	for _, item := range list.Items {
		detail.Items = append(detail.Items, r.shoppingItem(item))
	}
	return detail
}

func buildMenuDetail(menu model.Menu, items []model.MenuItem, list *model.ShoppingList, names *nameResolver) *model.MenuDetail {
	detail := &model.MenuDetail{
		Menu:  menu,
		Items: make([]model.MenuItemDetail, 0, len(items)),
	}
	for _, item := range items {
		detail.Items = append(detail.Items, names.menuItem(item))
	}
	if list != nil {
		detail.ShoppingList = names.shoppingList(*list)
	}
	return detail
}
