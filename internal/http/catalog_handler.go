package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/service"
)

// CatalogHandler provides HTTP handlers for dish and fridge routes.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListDishes handles GET /api/dishes requests.
//
// @Summary      List dishes
// @Tags         Dishes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Dish} "Dishes"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/dishes [get]
func (h *CatalogHandler) ListDishes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	dishes, err := h.catalog.ListDishes(c.Request.Context())
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(dishes)
}

// GetDish handles GET /api/dishes/:id requests.
//
// @Summary      Get a dish
// @Tags         Dishes
// @Produce      json
// @Param        id path string true "Dish ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Dish} "Dish"
// @Failure      404 {object} dto.ErrorResponse "Dish not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/dishes/{id} [get]
func (h *CatalogHandler) GetDish(c *gin.Context) {
	builder := NewResponseBuilder(c)

	dish, err := h.catalog.GetDish(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(dish)
}

// UpsertDish handles PUT /api/dishes/:id requests.
//
// @Summary      Create or replace a dish
// @Tags         Dishes
// @Accept       json
// @Produce      json
// @Param        id path string true "Dish ID"
// @Param        request body dto.UpsertDishRequest true "Dish"
// @Success      200 {object} dto.SuccessResponse{data=model.Dish} "Stored dish"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/dishes/{id} [put]
func (h *CatalogHandler) UpsertDish(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindRequest[dto.UpsertDishRequest](c, builder)
	if !ok {
		return
	}

	dish, err := h.catalog.UpsertDish(c.Request.Context(), req.ToModel(c.Param("id")))
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(dish)
}

// ListFridge handles GET /api/fridge requests.
//
// @Summary      List fridge stock
// @Tags         Fridge
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.FridgeEntry} "Fridge entries"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/fridge [get]
func (h *CatalogHandler) ListFridge(c *gin.Context) {
	builder := NewResponseBuilder(c)

	entries, err := h.catalog.ListFridge(c.Request.Context())
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(entries)
}

// UpsertFridgeEntry handles PUT /api/fridge/:ingredientId requests.
//
// @Summary      Set ingredient stock
// @Description  Sets the quantity held for an ingredient. A quantity of 0 removes the entry and returns null data.
// @Tags         Fridge
// @Accept       json
// @Produce      json
// @Param        ingredientId path string true "Ingredient ID"
// @Param        request body dto.UpsertFridgeEntryRequest true "Stock"
// @Success      200 {object} dto.SuccessResponse{data=model.FridgeEntry} "Stored entry"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/fridge/{ingredientId} [put]
func (h *CatalogHandler) UpsertFridgeEntry(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindRequest[dto.UpsertFridgeEntryRequest](c, builder)
	if !ok {
		return
	}

	entry, err := h.catalog.UpsertFridgeEntry(c.Request.Context(), req.ToModel(c.Param("ingredientId")))
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(entry)
}
