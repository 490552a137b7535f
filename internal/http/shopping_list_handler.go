package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/service"
)

// ShoppingListHandler provides HTTP handlers for shopping list routes.
type ShoppingListHandler struct {
	lists service.ShoppingListService
}

// NewShoppingListHandler creates a new ShoppingListHandler instance.
func NewShoppingListHandler(lists service.ShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{lists: lists}
}

// ListShoppingLists handles GET /api/shopping-lists requests.
//
// @Summary      List shopping lists
// @Tags         Shopping Lists
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.ShoppingList} "Shopping lists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/shopping-lists [get]
func (h *ShoppingListHandler) ListShoppingLists(c *gin.Context) {
	builder := NewResponseBuilder(c)

	lists, err := h.lists.List(c.Request.Context())
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(lists)
}

// GetShoppingList handles GET /api/shopping-lists/:id requests.
//
// @Summary      Get a shopping list
// @Tags         Shopping Lists
// @Produce      json
// @Param        id path string true "Shopping list ID"
// @Success      200 {object} dto.SuccessResponse{data=model.ShoppingListDetail} "Shopping list"
// @Failure      404 {object} dto.ErrorResponse "Shopping list not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/shopping-lists/{id} [get]
func (h *ShoppingListHandler) GetShoppingList(c *gin.Context) {
	builder := NewResponseBuilder(c)

	list, err := h.lists.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(list)
}

// SetItemBought handles PATCH /api/shopping-lists/:id/items/:itemId requests.
//
// @Summary      Mark a shopping list item bought
// @Tags         Shopping Lists
// @Accept       json
// @Produce      json
// @Param        id path string true "Shopping list ID"
// @Param        itemId path string true "Shopping list item ID"
// @Param        request body dto.SetItemBoughtRequest true "Bought flag"
// @Success      200 {object} dto.SuccessResponse{data=model.ShoppingListItemDetail} "Updated item"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "List or item not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/shopping-lists/{id}/items/{itemId} [patch]
func (h *ShoppingListHandler) SetItemBought(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindRequest[dto.SetItemBoughtRequest](c, builder)
	if !ok {
		return
	}

	item, err := h.lists.SetItemBought(c.Request.Context(), c.Param("id"), c.Param("itemId"), *req.Bought)
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(item)
}
