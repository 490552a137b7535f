// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/service"
)

type MockCatalogService struct {
	mock.Mock
}

var _ service.CatalogService = (*MockCatalogService)(nil)

func (m *MockCatalogService) ListDishes(ctx context.Context) ([]model.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockCatalogService) GetDish(ctx context.Context, id string) (*model.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockCatalogService) UpsertDish(ctx context.Context, dish model.Dish) (*model.Dish, error) {
	args := m.Called(ctx, dish)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockCatalogService) ListFridge(ctx context.Context) ([]model.FridgeEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FridgeEntry), args.Error(1)
}

func (m *MockCatalogService) UpsertFridgeEntry(ctx context.Context, entry model.FridgeEntry) (*model.FridgeEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FridgeEntry), args.Error(1)
}

func (m *MockCatalogService) Snapshot(ctx context.Context) (service.Snapshot, error) {
	args := m.Called(ctx)
	snap, _ := args.Get(0).(service.Snapshot)
	return snap, args.Error(1)
}
