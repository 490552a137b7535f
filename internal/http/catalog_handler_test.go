//go:build !integration

package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/menu-service/internal/circuitbreaker"
	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/service"
)

func TestCatalogHandler_Dishes(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		router, m := setupRouterWithMocks(t)
		m.catalog.On("ListDishes", mock.Anything).Return([]model.Dish{{ID: "d1", Name: "Tomato soup"}}, nil).Once()

		w := doRequest(router, http.MethodGet, "/api/dishes", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Tomato soup", decodeData[[]model.Dish](t, w)[0].Name)
	})

	t.Run("get unknown", func(t *testing.T) {
		router, m := setupRouterWithMocks(t)
		m.catalog.On("GetDish", mock.Anything, "missing").
			Return(nil, &service.DomainError{Code: service.CodeNotFound, Message: "Dish not found"}).Once()

		w := doRequest(router, http.MethodGet, "/api/dishes/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("storage unavailable", func(t *testing.T) {
		router, m := setupRouterWithMocks(t)
		m.catalog.On("ListDishes", mock.Anything).Return(nil, circuitbreaker.ErrCircuitOpen).Once()

		w := doRequest(router, http.MethodGet, "/api/dishes", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, dto.ErrCodeUnavailable, decodeError(t, w).Error)
	})
}

func TestCatalogHandler_UpsertDish(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mockServices)
		expectedStatus int
	}{
		{
			name: "stores the dish",
			body: `{"name":"Tomato soup","mealType":"lunch","tags":["vegan"],"ingredients":[{"ingredientId":"tomato","qtyPerServing":"150","unit":"g"}]}`,
			setupMock: func(m *mockServices) {
				expected := model.Dish{
					ID:       "d1",
					Name:     "Tomato soup",
					MealType: model.MealTypeLunch,
					IsActive: true,
					Tags:     []string{"vegan"},
					Ingredients: []model.DishIngredient{
						{IngredientID: "tomato", QtyPerServing: decimal.NewFromInt(150), Unit: model.UnitGram},
					},
				}
				m.catalog.On("UpsertDish", mock.Anything, mock.MatchedBy(func(d model.Dish) bool {
					return d.ID == expected.ID && d.Name == expected.Name && d.MealType == expected.MealType &&
						d.IsActive && len(d.Ingredients) == 1 &&
						d.Ingredients[0].QtyPerServing.Equal(expected.Ingredients[0].QtyPerServing) &&
						d.Ingredients[0].Unit == model.UnitGram
				})).Return(&expected, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown meal type",
			body:           `{"name":"Tomato soup","mealType":"brunch"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown unit",
			body:           `{"name":"Tomato soup","mealType":"lunch","ingredients":[{"ingredientId":"tomato","qtyPerServing":1,"unit":"furlong"}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           `{"mealType":"lunch"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service rejects the dish",
			body: `{"name":"Tomato soup","mealType":"lunch","ingredients":[{"ingredientId":"tomato","qtyPerServing":"-1"}]}`,
			setupMock: func(m *mockServices) {
				m.catalog.On("UpsertDish", mock.Anything, mock.AnythingOfType("model.Dish")).
					Return(nil, &service.DomainError{Code: service.CodeInvalidData, Message: "ingredient quantity must not be negative"}).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRouterWithMocks(t)
			if tt.setupMock != nil {
				tt.setupMock(&m)
			}

			w := doRequest(router, http.MethodPut, "/api/dishes/d1", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCatalogHandler_Fridge(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		router, m := setupRouterWithMocks(t)
		m.catalog.On("ListFridge", mock.Anything).
			Return([]model.FridgeEntry{{IngredientID: "tomato", Quantity: decimal.NewFromInt(50)}}, nil).Once()

		w := doRequest(router, http.MethodGet, "/api/fridge", "")

		assert.Equal(t, http.StatusOK, w.Code)
		entries := decodeData[[]model.FridgeEntry](t, w)
		assert.True(t, entries[0].Quantity.Equal(decimal.NewFromInt(50)))
	})

	t.Run("upsert", func(t *testing.T) {
		router, m := setupRouterWithMocks(t)
		m.catalog.On("UpsertFridgeEntry", mock.Anything, mock.MatchedBy(func(e model.FridgeEntry) bool {
			return e.IngredientID == "tomato" && e.Quantity.Equal(decimal.RequireFromString("2.5")) && e.Unit == model.UnitMilliliter
		})).Return(&model.FridgeEntry{ID: "f1", IngredientID: "tomato"}, nil).Once()

		w := doRequest(router, http.MethodPut, "/api/fridge/tomato", `{"quantity":"2.5","unit":"ml"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "f1", decodeData[model.FridgeEntry](t, w).ID)
	})

	t.Run("zero quantity deletes", func(t *testing.T) {
		router, m := setupRouterWithMocks(t)
		m.catalog.On("UpsertFridgeEntry", mock.Anything, mock.MatchedBy(func(e model.FridgeEntry) bool {
			return e.Quantity.IsZero()
		})).Return(nil, nil).Once()

		w := doRequest(router, http.MethodPut, "/api/fridge/tomato", `{"quantity":0}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, decodeData[*model.FridgeEntry](t, w))
	})

	t.Run("negative quantity", func(t *testing.T) {
		router, _ := setupRouterWithMocks(t)

		w := doRequest(router, http.MethodPut, "/api/fridge/tomato", `{"quantity":-1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "quantity", decodeError(t, w).Details["field"])
	})

	t.Run("service failure", func(t *testing.T) {
		router, m := setupRouterWithMocks(t)
		m.catalog.On("UpsertFridgeEntry", mock.Anything, mock.AnythingOfType("model.FridgeEntry")).
			Return(nil, errors.New("write failed")).Once()

		w := doRequest(router, http.MethodPut, "/api/fridge/tomato", `{"quantity":1}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
