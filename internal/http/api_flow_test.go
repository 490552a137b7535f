//go:build contract || integration

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/repository"
	"github.com/guttosm/menu-service/internal/service"
)

type flowRepositories struct {
	dishes repository.DishRepositoryInterface
	fridge repository.FridgeRepositoryInterface
	menus  repository.MenuRepositoryInterface
	lists  repository.ShoppingListRepositoryInterface
}

// newFlowRouter wires the real services over repos, mirroring app wiring
// without the global rate limit.
func newFlowRouter(repos flowRepositories) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := service.NewCatalogService(repos.dishes, repos.fridge)
	menus := service.NewMenuService(repos.menus, repos.lists, catalog, service.NewMenuGenerator(),
		service.WithMenuCache(100, time.Minute))
	lists := service.NewShoppingListService(repos.lists, catalog, service.WithListChangeHook(menus.Invalidate))

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	return NewRouter(Services{Menus: menus, Catalog: catalog, ShoppingLists: lists}, NewHealthHandler(), cfg)
}

func flowRequest(t *testing.T, router *gin.Engine, method, path, body string, expectedStatus int) []byte {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, expectedStatus, w.Code, "%s %s: %s", method, path, w.Body.String())
	return w.Body.Bytes()
}

func flowData[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var resp struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	return resp.Data
}

func shoppingQuantities(list *model.ShoppingListDetail) map[string]string {
	out := make(map[string]string, len(list.Items))
	for _, item := range list.Items {
		out[item.IngredientID] = item.Quantity.String() + " " + string(item.Unit)
	}
	return out
}

// runMenuLifecycle drives the full API against the given router: catalog
// seeding, generation, locking, regeneration, status changes, shopping and
// deletion.
func runMenuLifecycle(t *testing.T, router *gin.Engine) {
	t.Helper()

	flowRequest(t, router, http.MethodPut, "/api/dishes/soup",
		`{"name":"Tomato soup","mealType":"lunch","tags":["vegan"],"ingredients":[{"ingredientId":"tomato","name":"Tomato","qtyPerServing":"100","unit":"g"}]}`,
		http.StatusOK)
	flowRequest(t, router, http.MethodPut, "/api/dishes/salad",
		`{"name":"Garden salad","mealType":"lunch","tags":["vegan","quick"],"ingredients":[{"ingredientId":"lettuce","name":"Lettuce","qtyPerServing":"1","unit":"pcs"}]}`,
		http.StatusOK)
	flowRequest(t, router, http.MethodPut, "/api/dishes/pasta",
		`{"name":"Pasta","mealType":"dinner","ingredients":[{"ingredientId":"pasta","name":"Pasta","qtyPerServing":"200","unit":"g"}]}`,
		http.StatusOK)
	flowRequest(t, router, http.MethodPut, "/api/fridge/tomato", `{"name":"Tomato","quantity":"50","unit":"g"}`, http.StatusOK)

	dishes := flowData[[]model.Dish](t, flowRequest(t, router, http.MethodGet, "/api/dishes", "", http.StatusOK))
	require.Len(t, dishes, 3)

	t.Run("generation errors", func(t *testing.T) {
		raw := flowRequest(t, router, http.MethodPost, "/api/menus/generate", `{"totalSlots":{"dinner":2}}`, http.StatusConflict)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(raw, &resp))
		assert.Equal(t, "INSUFFICIENT_DISHES", resp.Error)

		flowRequest(t, router, http.MethodPost, "/api/menus/generate", `{"totalSlots":{}}`, http.StatusBadRequest)
		flowRequest(t, router, http.MethodPost, "/api/menus/generate",
			`{"totalSlots":{"lunch":1},"requiredDishes":["missing"]}`, http.StatusConflict)

		menus := flowData[[]model.Menu](t, flowRequest(t, router, http.MethodGet, "/api/menus", "", http.StatusOK))
		assert.Empty(t, menus, "failed generations persist nothing")
	})

	generated := flowData[model.MenuDetail](t, flowRequest(t, router, http.MethodPost, "/api/menus/generate",
		`{"name":"Week 1","totalSlots":{"lunch":1,"dinner":1}}`, http.StatusCreated))

	menuID := generated.Menu.ID
	require.NotEmpty(t, menuID)
	assert.Equal(t, model.StatusDraft, generated.Menu.Status)
	require.Len(t, generated.Items, 2)
	require.NotNil(t, generated.ShoppingList)
	assert.Equal(t, "Week 1 shopping list", generated.ShoppingList.Name)

	var lunchItem model.MenuItemDetail
	for _, item := range generated.Items {
		if item.MealType == model.MealTypeLunch {
			lunchItem = item
		}
	}
	assert.Equal(t, "soup", lunchItem.DishID, "fridge overlap ranks the soup first")
	assert.Equal(t, "Tomato soup", lunchItem.DishName)
	assert.Equal(t, map[string]string{"tomato": "50 g", "pasta": "200 g"}, shoppingQuantities(generated.ShoppingList))

	fetched := flowData[model.MenuDetail](t, flowRequest(t, router, http.MethodGet, "/api/menus/"+menuID, "", http.StatusOK))
	assert.Equal(t, generated.Menu.ID, fetched.Menu.ID)
	assert.ElementsMatch(t, generated.Items, fetched.Items)

	flowRequest(t, router, http.MethodPost, "/api/menus/"+menuID+"/lock",
		`{"itemIds":["`+lunchItem.ID+`"]}`, http.StatusOK)

	t.Run("locked items exceeding slots", func(t *testing.T) {
		flowRequest(t, router, http.MethodPost, "/api/menus/"+menuID+"/regenerate",
			`{"totalSlots":{"dinner":1}}`, http.StatusConflict)
	})

	regenerated := flowData[model.MenuDetail](t, flowRequest(t, router, http.MethodPost, "/api/menus/"+menuID+"/regenerate",
		`{"name":"Week 2","totalSlots":{"lunch":1,"dinner":1}}`, http.StatusOK))

	assert.Equal(t, menuID, regenerated.Menu.ID)
	assert.Equal(t, "Week 2", regenerated.Menu.Name)
	assert.Equal(t, generated.ShoppingList.ID, regenerated.ShoppingList.ID)
	assert.Equal(t, "Week 2 shopping list", regenerated.ShoppingList.Name)
	require.Len(t, regenerated.Items, 2)
	kept := false
	for _, item := range regenerated.Items {
		if item.ID == lunchItem.ID {
			kept = true
			assert.True(t, item.Locked)
			assert.Equal(t, "soup", item.DishID)
		}
	}
	assert.True(t, kept, "locked item survives regeneration")

	cooked := flowData[model.MenuItemDetail](t, flowRequest(t, router, http.MethodPatch,
		"/api/menus/"+menuID+"/items/"+lunchItem.ID, `{"cooked":true}`, http.StatusOK))
	assert.True(t, cooked.Cooked)

	status := flowData[model.Menu](t, flowRequest(t, router, http.MethodPatch,
		"/api/menus/"+menuID+"/status", `{"status":"final"}`, http.StatusOK))
	assert.Equal(t, model.StatusFinal, status.Status)
	flowRequest(t, router, http.MethodPatch, "/api/menus/"+menuID+"/status", `{"status":"final"}`, http.StatusConflict)

	listID := regenerated.ShoppingList.ID
	list := flowData[model.ShoppingListDetail](t, flowRequest(t, router, http.MethodGet, "/api/shopping-lists/"+listID, "", http.StatusOK))
	assert.Equal(t, model.StatusFinal, list.Status, "status is mirrored to the shopping list")
	require.NotEmpty(t, list.Items)

	bought := flowData[model.ShoppingListItemDetail](t, flowRequest(t, router, http.MethodPatch,
		"/api/shopping-lists/"+listID+"/items/"+list.Items[0].ID, `{"bought":true}`, http.StatusOK))
	assert.True(t, bought.Bought)

	afterBuy := flowData[model.MenuDetail](t, flowRequest(t, router, http.MethodGet, "/api/menus/"+menuID, "", http.StatusOK))
	for _, item := range afterBuy.ShoppingList.Items {
		if item.ID == bought.ID {
			assert.True(t, item.Bought, "menu view reflects bought items")
		}
	}

	flowRequest(t, router, http.MethodPut, "/api/fridge/tomato", `{"quantity":0}`, http.StatusOK)
	fridge := flowData[[]model.FridgeEntry](t, flowRequest(t, router, http.MethodGet, "/api/fridge", "", http.StatusOK))
	assert.Empty(t, fridge)

	flowRequest(t, router, http.MethodDelete, "/api/menus/"+menuID, "", http.StatusNoContent)
	flowRequest(t, router, http.MethodGet, "/api/menus/"+menuID, "", http.StatusNotFound)
	flowRequest(t, router, http.MethodGet, "/api/shopping-lists/"+listID, "", http.StatusNotFound)
}
