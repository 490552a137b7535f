package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/repository"
)

type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) List(ctx context.Context) ([]model.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	dishes, _ := args.Get(0).([]model.Dish)
	return dishes, args.Error(1)
}

func (m *MockDishRepository) GetByID(ctx context.Context, id string) (*model.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	dish, _ := args.Get(0).(*model.Dish)
	return dish, args.Error(1)
}

func (m *MockDishRepository) Upsert(ctx context.Context, dish model.Dish) (*model.Dish, error) {
	args := m.Called(ctx, dish)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	stored, _ := args.Get(0).(*model.Dish)
	return stored, args.Error(1)
}

func newTestCatalogService(opts ...CatalogOption) (*CatalogServiceImpl, *repository.MemoryDishRepository, *repository.MemoryFridgeRepository) {
	snap := testCatalog()
	dishes := repository.NewMemoryDishRepository(snap.Dishes...)
	fridge := repository.NewMemoryFridgeRepository(snap.Fridge...)
	return NewCatalogService(dishes, fridge, opts...), dishes, fridge
}

func TestCatalogService_NotConfigured(t *testing.T) {
	ctx := context.Background()
	s := NewCatalogService(nil, nil)

	_, err := s.ListDishes(ctx)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	_, err = s.UpsertFridgeEntry(ctx, model.FridgeEntry{IngredientID: "egg"})
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	_, err = s.Snapshot(ctx)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}

func TestCatalogService_GetDish(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestCatalogService()

	dish, err := s.GetDish(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Tomato soup", dish.Name)

	_, err = s.GetDish(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, msgDishNotFound)
}

func TestCatalogService_UpsertDish(t *testing.T) {
	valid := model.Dish{
		ID:       "d9",
		Name:     "  Pancakes ",
		MealType: model.MealTypeBreakfast,
		IsActive: true,
		Tags:     []string{" sweet ", ""},
		Ingredients: []model.DishIngredient{
			{IngredientID: "flour", QtyPerServing: decimal.NewFromInt(100), Unit: model.UnitGram},
		},
	}

	tests := []struct {
		name        string
		mutate      func(d *model.Dish)
		expectedErr error
	}{
		{name: "valid dish is normalized"},
		{name: "missing name", mutate: func(d *model.Dish) { d.Name = " " }, expectedErr: ErrValidation},
		{name: "unknown meal type", mutate: func(d *model.Dish) { d.MealType = "brunch" }, expectedErr: ErrValidation},
		{
			name: "non-positive quantity",
			mutate: func(d *model.Dish) {
				d.Ingredients = []model.DishIngredient{{IngredientID: "flour", QtyPerServing: decimal.Zero}}
			},
			expectedErr: ErrValidation,
		},
		{
			name: "unknown unit",
			mutate: func(d *model.Dish) {
				d.Ingredients = []model.DishIngredient{{IngredientID: "flour", QtyPerServing: decimal.NewFromInt(1), Unit: "kg"}}
			},
			expectedErr: ErrValidation,
		},
		{
			name: "duplicate ingredient",
			mutate: func(d *model.Dish) {
				d.Ingredients = append(d.Ingredients, d.Ingredients[0])
			},
			expectedErr: ErrInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s, dishes, _ := newTestCatalogService()

			dish := valid
			dish.Ingredients = append([]model.DishIngredient(nil), valid.Ingredients...)
			if tt.mutate != nil {
				tt.mutate(&dish)
			}

			stored, err := s.UpsertDish(ctx, dish)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				missing, _ := dishes.GetByID(ctx, "d9")
				assert.Nil(t, missing)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Pancakes", stored.Name)
			assert.Equal(t, []string{"sweet"}, stored.Tags)
		})
	}
}

func TestCatalogService_UpsertFridgeEntry(t *testing.T) {
	newID := func() string { return "generated" }

	t.Run("creates a new entry", func(t *testing.T) {
		ctx := context.Background()
		s, _, fridge := newTestCatalogService(WithIDGenerator(newID))

		entry, err := s.UpsertFridgeEntry(ctx, model.FridgeEntry{IngredientID: "egg", Name: "Egg", Quantity: decimal.NewFromInt(6), Unit: model.UnitPiece})
		require.NoError(t, err)
		assert.Equal(t, "generated", entry.ID)

		stored, err := fridge.FindByIngredient(ctx, "egg")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(6).Equal(stored.Quantity))
	})

	t.Run("updates keep name and unit when omitted", func(t *testing.T) {
		ctx := context.Background()
		s, _, _ := newTestCatalogService()

		entry, err := s.UpsertFridgeEntry(ctx, model.FridgeEntry{IngredientID: "tomato", Quantity: decimal.NewFromInt(80)})
		require.NoError(t, err)
		assert.Equal(t, "tomato", entry.Name)
		assert.Equal(t, model.UnitGram, entry.Unit)
	})

	t.Run("zero quantity deletes the entry", func(t *testing.T) {
		ctx := context.Background()
		s, _, fridge := newTestCatalogService()

		entry, err := s.UpsertFridgeEntry(ctx, model.FridgeEntry{IngredientID: "pasta", Quantity: decimal.Zero})
		require.NoError(t, err)
		assert.True(t, entry.Quantity.IsZero())
		assert.Equal(t, "pasta", entry.Name)

		stored, err := fridge.FindByIngredient(ctx, "pasta")
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("zero quantity for unknown ingredient is a no-op", func(t *testing.T) {
		ctx := context.Background()
		s, _, fridge := newTestCatalogService(WithIDGenerator(newID))

		entry, err := s.UpsertFridgeEntry(ctx, model.FridgeEntry{IngredientID: "saffron", Quantity: decimal.Zero})
		require.NoError(t, err)
		assert.Equal(t, "generated", entry.ID)

		entries, err := fridge.List(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		s, _, _ := newTestCatalogService()
		_, err := s.UpsertFridgeEntry(context.Background(), model.FridgeEntry{IngredientID: "egg", Quantity: decimal.NewFromInt(-1)})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing ingredient id is rejected", func(t *testing.T) {
		s, _, _ := newTestCatalogService()
		_, err := s.UpsertFridgeEntry(context.Background(), model.FridgeEntry{Quantity: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestCatalogService_SnapshotCache(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestCatalogService(WithSnapshotCache(time.Minute))
	defer s.Stop()

	first, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, first.Dishes, 7)

	_, err = s.UpsertDish(ctx, testDish("d8", "Porridge", model.MealTypeBreakfast, nil))
	require.NoError(t, err)

	second, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, second.Dishes, 8, "writes invalidate the cached snapshot")

	_, err = s.UpsertFridgeEntry(ctx, model.FridgeEntry{IngredientID: "egg", Quantity: decimal.NewFromInt(2)})
	require.NoError(t, err)

	third, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, third.Fridge, 3)
}

func TestCatalogService_SnapshotServedFromCache(t *testing.T) {
	ctx := context.Background()
	dishes := new(MockDishRepository)
	dishes.On("List", mock.Anything).Return([]model.Dish{testDish("d1", "Soup", model.MealTypeLunch, nil)}, nil).Once()

	s := NewCatalogService(dishes, repository.NewMemoryFridgeRepository(), WithSnapshotCache(time.Minute))
	defer s.Stop()

	for i := 0; i < 3; i++ {
		snap, err := s.Snapshot(ctx)
		require.NoError(t, err)
		assert.Len(t, snap.Dishes, 1)
	}
	dishes.AssertExpectations(t)
}

func TestCatalogService_SnapshotPropagatesErrors(t *testing.T) {
	dishes := new(MockDishRepository)
	dishes.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	s := NewCatalogService(dishes, repository.NewMemoryFridgeRepository())
	_, err := s.Snapshot(context.Background())
	assert.EqualError(t, err, "connection refused")
}

// pausingFridgeRepository blocks the next List call until released.
type pausingFridgeRepository struct {
	*repository.MemoryFridgeRepository
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func newPausingFridgeRepository() *pausingFridgeRepository {
	return &pausingFridgeRepository{
		MemoryFridgeRepository: repository.NewMemoryFridgeRepository(),
		entered:                make(chan struct{}),
		release:                make(chan struct{}),
	}
}

func (r *pausingFridgeRepository) List(ctx context.Context) ([]model.FridgeEntry, error) {
	entries, err := r.MemoryFridgeRepository.List(ctx)
	if r.armed.CompareAndSwap(true, false) {
		close(r.entered)
		<-r.release
	}
	return entries, err
}

func TestCatalogService_SnapshotSkipsCacheAfterConcurrentWrite(t *testing.T) {
	ctx := context.Background()
	fridge := newPausingFridgeRepository()
	fridge.armed.Store(true)

	s := NewCatalogService(repository.NewMemoryDishRepository(), fridge, WithSnapshotCache(time.Minute))
	defer s.Stop()

	done := make(chan error, 1)
	go func() {
		_, err := s.Snapshot(ctx)
		done <- err
	}()
	<-fridge.entered

	_, err := s.UpsertFridgeEntry(ctx, model.FridgeEntry{IngredientID: "tomato", Quantity: decimal.NewFromInt(500), Unit: model.UnitGram})
	require.NoError(t, err)

	close(fridge.release)
	require.NoError(t, <-done)

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Fridge, 1)
	assert.True(t, decimal.NewFromInt(500).Equal(snap.Fridge[0].Quantity))
}
