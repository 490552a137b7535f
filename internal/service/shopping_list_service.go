package service

import (
	"context"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/repository"
)

// ShoppingListService exposes the shopping lists produced by menu generation.
type ShoppingListService interface {
	List(ctx context.Context) ([]model.ShoppingList, error)
	Get(ctx context.Context, id string) (*model.ShoppingListDetail, error)
	SetItemBought(ctx context.Context, listID, itemID string, bought bool) (*model.ShoppingListItemDetail, error)
}

// ShoppingListOption configures a ShoppingListServiceImpl.
type ShoppingListOption func(*ShoppingListServiceImpl)

// ShoppingListServiceImpl implements ShoppingListService.
type ShoppingListServiceImpl struct {
	lists    repository.ShoppingListRepositoryInterface
	catalog  CatalogService
	onChange func(menuID string)
}

// NewShoppingListService creates a shopping list service.
func NewShoppingListService(
	lists repository.ShoppingListRepositoryInterface,
	catalog CatalogService,
	opts ...ShoppingListOption,
) *ShoppingListServiceImpl {
	s := &ShoppingListServiceImpl{lists: lists, catalog: catalog}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithListChangeHook registers fn to be called with the owning menu ID after
// a list item changes.
func WithListChangeHook(fn func(menuID string)) ShoppingListOption {
	return func(s *ShoppingListServiceImpl) {
		s.onChange = fn
	}
}

func (s *ShoppingListServiceImpl) List(ctx context.Context) ([]model.ShoppingList, error) {
	if s.lists == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.lists.List(ctx)
}

func (s *ShoppingListServiceImpl) Get(ctx context.Context, id string) (*model.ShoppingListDetail, error) {
	if s.lists == nil || s.catalog == nil {
		return nil, ErrRepositoryNotConfigured
	}
	list, err := s.lists.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, notFound(msgShoppingListNotFound)
	}
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return newNameResolver(snapshot).shoppingList(*list), nil
}

func (s *ShoppingListServiceImpl) SetItemBought(ctx context.Context, listID, itemID string, bought bool) (*model.ShoppingListItemDetail, error) {
	if s.lists == nil || s.catalog == nil {
		return nil, ErrRepositoryNotConfigured
	}
	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, notFound(msgShoppingListNotFound)
	}
	item, err := s.lists.SetItemBought(ctx, listID, itemID, bought)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFound(msgShoppingItemNotFound)
	}
	if s.onChange != nil {
		s.onChange(list.MenuID)
	}
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	detail := newNameResolver(snapshot).shoppingItem(*item)
	return &detail, nil
}
