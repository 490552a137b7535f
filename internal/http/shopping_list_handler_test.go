//go:build !integration

package http

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/service"
)

func TestShoppingListHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		router, m := setupRouterWithMocks(t)
		m.lists.On("List", mock.Anything).Return([]model.ShoppingList{{ID: "l1", MenuID: "m1"}}, nil).Once()

		w := doRequest(router, http.MethodGet, "/api/shopping-lists", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeData[[]model.ShoppingList](t, w), 1)
	})

	t.Run("get", func(t *testing.T) {
		router, m := setupRouterWithMocks(t)
		m.lists.On("Get", mock.Anything, "l1").Return(&model.ShoppingListDetail{
			ID:   "l1",
			Name: "Week 1 shopping list",
			Items: []model.ShoppingListItemDetail{{
				ShoppingListItem: model.ShoppingListItem{ID: "s1", IngredientID: "tomato", Quantity: decimal.NewFromInt(50), Unit: model.UnitGram},
				Name:             "Tomato",
			}},
		}, nil).Once()

		w := doRequest(router, http.MethodGet, "/api/shopping-lists/l1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		list := decodeData[model.ShoppingListDetail](t, w)
		assert.Equal(t, "Tomato", list.Items[0].Name)
		assert.True(t, list.Items[0].Quantity.Equal(decimal.NewFromInt(50)))
	})

	t.Run("get unknown", func(t *testing.T) {
		router, m := setupRouterWithMocks(t)
		m.lists.On("Get", mock.Anything, "missing").
			Return(nil, &service.DomainError{Code: service.CodeNotFound, Message: "Shopping list not found"}).Once()

		w := doRequest(router, http.MethodGet, "/api/shopping-lists/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("mark bought", func(t *testing.T) {
		router, m := setupRouterWithMocks(t)
		m.lists.On("SetItemBought", mock.Anything, "l1", "s1", true).Return(&model.ShoppingListItemDetail{
			ShoppingListItem: model.ShoppingListItem{ID: "s1", Bought: true},
		}, nil).Once()

		w := doRequest(router, http.MethodPatch, "/api/shopping-lists/l1/items/s1", `{"bought":true}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeData[model.ShoppingListItemDetail](t, w).Bought)
	})

	t.Run("missing bought flag", func(t *testing.T) {
		router, _ := setupRouterWithMocks(t)

		w := doRequest(router, http.MethodPatch, "/api/shopping-lists/l1/items/s1", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
