// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/service"
)

type MockShoppingListService struct {
	mock.Mock
}

var _ service.ShoppingListService = (*MockShoppingListService)(nil)

func (m *MockShoppingListService) List(ctx context.Context) ([]model.ShoppingList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShoppingList), args.Error(1)
}

func (m *MockShoppingListService) Get(ctx context.Context, id string) (*model.ShoppingListDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingListDetail), args.Error(1)
}

func (m *MockShoppingListService) SetItemBought(ctx context.Context, listID, itemID string, bought bool) (*model.ShoppingListItemDetail, error) {
	args := m.Called(ctx, listID, itemID, bought)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingListItemDetail), args.Error(1)
}
