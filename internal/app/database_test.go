//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/circuitbreaker"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/repository"
)

func TestInitializeDatabase_MemoryFallback(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{
			name: "disabled database uses memory repositories",
			cfg:  config.DatabaseConfig{Enabled: false},
		},
		{
			name: "unreachable database uses memory repositories",
			cfg: config.DatabaseConfig{
				Enabled:      true,
				URI:          "mongodb://127.0.0.1:1",
				DatabaseName: "unreachable",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeDatabase(tt.cfg)

			require.NotNil(t, components)
			assert.Equal(t, backendMemory, components.Backend)
			assert.Nil(t, components.DB)
			assert.IsType(t, &repository.MemoryDishRepository{}, components.Dishes)
			assert.IsType(t, &repository.MemoryFridgeRepository{}, components.Fridge)
			assert.IsType(t, &repository.MemoryMenuRepository{}, components.Menus)
			assert.IsType(t, &repository.MemoryShoppingListRepository{}, components.ShoppingLists)
			assert.Empty(t, components.CircuitBreakers)
			assert.NotPanics(t, components.Close)
		})
	}
}

func TestNewBreaker(t *testing.T) {
	cfg := config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 3,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Second,
	}

	cb := newBreaker(cfg, "mongodb-test")

	assert.Equal(t, "mongodb-test", cb.Name())
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
}

func TestDatabaseComponents_CloseNil(t *testing.T) {
	var components *DatabaseComponents
	assert.NotPanics(t, components.Close)
}

type failingDishRepository struct {
	repository.DishRepositoryInterface
}

func (failingDishRepository) List(context.Context) ([]model.Dish, error) {
	return nil, errors.New("database error")
}

func TestInitializeDefaultCatalog(t *testing.T) {
	tests := []struct {
		name          string
		repo          func() repository.DishRepositoryInterface
		wantError     bool
		expectedNames []string
	}{
		{
			name:          "empty catalog is seeded",
			repo:          func() repository.DishRepositoryInterface { return repository.NewMemoryDishRepository() },
			expectedNames: []string{"Tomato Garlic Pasta"},
		},
		{
			name: "existing catalog is left alone",
			repo: func() repository.DishRepositoryInterface {
				return repository.NewMemoryDishRepository(model.Dish{ID: "soup", Name: "Soup", MealType: model.MealTypeLunch})
			},
			expectedNames: []string{"Soup"},
		},
		{
			name:      "list error",
			repo:      func() repository.DishRepositoryInterface { return failingDishRepository{} },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := tt.repo()
			err := initializeDefaultCatalog(repo, DefaultDishes)

			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			dishes, err := repo.List(context.Background())
			require.NoError(t, err)
			names := make([]string, 0, len(dishes))
			for _, d := range dishes {
				names = append(names, d.Name)
			}
			assert.ElementsMatch(t, tt.expectedNames, names)
		})
	}
}

func TestInitializeDatabase_SeedsMemoryCatalog(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{SeedCatalog: true})

	dishes, err := components.Dishes.List(context.Background())
	require.NoError(t, err)
	require.Len(t, dishes, len(DefaultDishes))
	assert.Equal(t, DefaultDishes[0].ID, dishes[0].ID)
}
