package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// MenuRoutes registers the menu endpoints. Generation endpoints run behind
// the extra middleware in generate, typically a scoped rate limit.
type MenuRoutes struct {
	handler  *MenuHandler
	generate []gin.HandlerFunc
}

// NewMenuRoutes creates a new MenuRoutes instance.
func NewMenuRoutes(handler *MenuHandler, generate ...gin.HandlerFunc) *MenuRoutes {
	return &MenuRoutes{handler: handler, generate: generate}
}

// RegisterRoutes registers menu routes.
func (r *MenuRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	menus := rg.Group("/menus")
	menus.GET("", r.handler.ListMenus)
	menus.POST("/generate", r.generation(r.handler.GenerateMenu)...)
	menus.GET("/:id", r.handler.GetMenu)
	menus.DELETE("/:id", r.handler.DeleteMenu)
	menus.POST("/:id/regenerate", r.generation(r.handler.RegenerateMenu)...)
	menus.POST("/:id/lock", r.handler.LockItems)
	menus.PATCH("/:id/status", r.handler.UpdateStatus)
	menus.PATCH("/:id/items/:itemId", r.handler.UpdateItemCooked)
}

func (r *MenuRoutes) generation(h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(r.generate)+1)
	chain = append(chain, r.generate...)
	return append(chain, h)
}

// CatalogRoutes registers the dish and fridge endpoints.
type CatalogRoutes struct {
	handler *CatalogHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(handler *CatalogHandler) *CatalogRoutes {
	return &CatalogRoutes{handler: handler}
}

// RegisterRoutes registers dish and fridge routes.
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dishes", r.handler.ListDishes)
	rg.GET("/dishes/:id", r.handler.GetDish)
	rg.PUT("/dishes/:id", r.handler.UpsertDish)
	rg.GET("/fridge", r.handler.ListFridge)
	rg.PUT("/fridge/:ingredientId", r.handler.UpsertFridgeEntry)
}

// ShoppingListRoutes registers the shopping list endpoints.
type ShoppingListRoutes struct {
	handler *ShoppingListHandler
}

// NewShoppingListRoutes creates a new ShoppingListRoutes instance.
func NewShoppingListRoutes(handler *ShoppingListHandler) *ShoppingListRoutes {
	return &ShoppingListRoutes{handler: handler}
}

// RegisterRoutes registers shopping list routes.
func (r *ShoppingListRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/shopping-lists", r.handler.ListShoppingLists)
	rg.GET("/shopping-lists/:id", r.handler.GetShoppingList)
	rg.PATCH("/shopping-lists/:id/items/:itemId", r.handler.SetItemBought)
}
