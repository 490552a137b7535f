// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/service"
)

type MockMenuService struct {
	mock.Mock
}

var _ service.MenuService = (*MockMenuService)(nil)

func (m *MockMenuService) List(ctx context.Context) ([]model.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

func (m *MockMenuService) Get(ctx context.Context, id string) (*model.MenuDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuDetail), args.Error(1)
}

func (m *MockMenuService) Generate(ctx context.Context, req service.GenerationRequest) (*model.MenuDetail, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuDetail), args.Error(1)
}

func (m *MockMenuService) Regenerate(ctx context.Context, id string, req service.GenerationRequest) (*model.MenuDetail, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuDetail), args.Error(1)
}

func (m *MockMenuService) UpdateItemCooked(ctx context.Context, menuID, itemID string, cooked bool) (*model.MenuItemDetail, error) {
	args := m.Called(ctx, menuID, itemID, cooked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItemDetail), args.Error(1)
}

func (m *MockMenuService) LockItems(ctx context.Context, menuID string, itemIDs []string, locked bool) ([]model.MenuItemDetail, error) {
	args := m.Called(ctx, menuID, itemIDs, locked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItemDetail), args.Error(1)
}

func (m *MockMenuService) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Menu, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
