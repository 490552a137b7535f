package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/i18n"
	"github.com/guttosm/menu-service/internal/service"
)

// MenuHandler provides HTTP handlers for menu routes.
type MenuHandler struct {
	menus service.MenuService
}

// NewMenuHandler creates a new MenuHandler instance.
func NewMenuHandler(menus service.MenuService) *MenuHandler {
	return &MenuHandler{menus: menus}
}

// bindRequest decodes and validates the JSON body into T. It writes the error
// response itself and returns false when the request is unusable.
func bindRequest[T any](c *gin.Context, builder *ResponseBuilder) (*T, bool) {
	req, err := BuildRequestAndValidate[T](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.FromError(err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return nil, false
	}
	return req, true
}

func generationRequest(req *dto.GenerateMenuRequest) service.GenerationRequest {
	return service.GenerationRequest{
		Name:                req.Name,
		TotalSlots:          req.SlotRequest(),
		IncludeTags:         req.IncludeTags(),
		RequiredDishes:      req.RequiredDishes,
		RequiredIngredients: req.RequiredIngredients,
	}
}

// GenerateMenu handles POST /api/menus/generate requests.
//
// @Summary      Generate a menu
// @Description  Fills the requested slots per meal type from the dish catalog, ranking dishes by fridge overlap, and creates the menu with its shopping list. Required dishes and ingredients are placed first. Supports idempotency via Idempotency-Key header.
// @Tags         Menus
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.GenerateMenuRequest true "Menu generation request"
// @Success      201 {object} dto.SuccessResponse{data=model.MenuDetail} "Generated menu"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      409 {object} dto.ErrorResponse "Not enough dishes to satisfy the request"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/menus/generate [post]
func (h *MenuHandler) GenerateMenu(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindRequest[dto.GenerateMenuRequest](c, builder)
	if !ok {
		return
	}

	detail, err := h.menus.Generate(c.Request.Context(), generationRequest(req))
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessCreated(detail)
}

// RegenerateMenu handles POST /api/menus/:id/regenerate requests.
//
// @Summary      Regenerate a menu
// @Description  Keeps locked items, refills the remaining slots and rebuilds the shopping list in place. The menu is renamed to the request name.
// @Tags         Menus
// @Accept       json
// @Produce      json
// @Param        id path string true "Menu ID"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.GenerateMenuRequest true "Menu generation request"
// @Success      200 {object} dto.SuccessResponse{data=model.MenuDetail} "Regenerated menu"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Menu not found"
// @Failure      409 {object} dto.ErrorResponse "Not enough dishes to satisfy the request"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/menus/{id}/regenerate [post]
func (h *MenuHandler) RegenerateMenu(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindRequest[dto.GenerateMenuRequest](c, builder)
	if !ok {
		return
	}

	detail, err := h.menus.Regenerate(c.Request.Context(), c.Param("id"), generationRequest(req))
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(detail)
}

// ListMenus handles GET /api/menus requests.
//
// @Summary      List menus
// @Tags         Menus
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Menu} "Menus"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/menus [get]
func (h *MenuHandler) ListMenus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	menus, err := h.menus.List(c.Request.Context())
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(menus)
}

// GetMenu handles GET /api/menus/:id requests.
//
// @Summary      Get a menu
// @Description  Returns the menu with its items and shopping list, names resolved.
// @Tags         Menus
// @Produce      json
// @Param        id path string true "Menu ID"
// @Success      200 {object} dto.SuccessResponse{data=model.MenuDetail} "Menu"
// @Failure      404 {object} dto.ErrorResponse "Menu not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/menus/{id} [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	builder := NewResponseBuilder(c)

	detail, err := h.menus.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(detail)
}

// DeleteMenu handles DELETE /api/menus/:id requests.
//
// @Summary      Delete a menu
// @Description  Deletes the menu, its items and its shopping list.
// @Tags         Menus
// @Param        id path string true "Menu ID"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Menu not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/menus/{id} [delete]
func (h *MenuHandler) DeleteMenu(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.menus.Delete(c.Request.Context(), c.Param("id")); err != nil {
		builder.FromError(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateItemCooked handles PATCH /api/menus/:id/items/:itemId requests.
//
// @Summary      Mark a menu item cooked
// @Tags         Menus
// @Accept       json
// @Produce      json
// @Param        id path string true "Menu ID"
// @Param        itemId path string true "Menu item ID"
// @Param        request body dto.UpdateItemCookedRequest true "Cooked flag"
// @Success      200 {object} dto.SuccessResponse{data=model.MenuItemDetail} "Updated item"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Menu or item not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/menus/{id}/items/{itemId} [patch]
func (h *MenuHandler) UpdateItemCooked(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindRequest[dto.UpdateItemCookedRequest](c, builder)
	if !ok {
		return
	}

	item, err := h.menus.UpdateItemCooked(c.Request.Context(), c.Param("id"), c.Param("itemId"), *req.Cooked)
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(item)
}

// LockItems handles POST /api/menus/:id/lock requests.
//
// @Summary      Lock or unlock menu items
// @Description  Locked items survive regeneration unchanged. locked defaults to true.
// @Tags         Menus
// @Accept       json
// @Produce      json
// @Param        id path string true "Menu ID"
// @Param        request body dto.LockItemsRequest true "Items to lock"
// @Success      200 {object} dto.SuccessResponse{data=[]model.MenuItemDetail} "Updated items"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Menu or item not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/menus/{id}/lock [post]
func (h *MenuHandler) LockItems(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindRequest[dto.LockItemsRequest](c, builder)
	if !ok {
		return
	}

	items, err := h.menus.LockItems(c.Request.Context(), c.Param("id"), req.ItemIDs, req.LockValue())
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(items)
}

// UpdateStatus handles PATCH /api/menus/:id/status requests.
//
// @Summary      Change menu status
// @Description  Moves a menu between draft and final. The shopping list follows. Setting the current status again is a conflict.
// @Tags         Menus
// @Accept       json
// @Produce      json
// @Param        id path string true "Menu ID"
// @Param        request body dto.UpdateStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse{data=model.Menu} "Updated menu"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Menu not found"
// @Failure      409 {object} dto.ErrorResponse "Menu already has this status"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/menus/{id}/status [patch]
func (h *MenuHandler) UpdateStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindRequest[dto.UpdateStatusRequest](c, builder)
	if !ok {
		return
	}

	menu, err := h.menus.UpdateStatus(c.Request.Context(), c.Param("id"), req.StatusValue())
	if err != nil {
		builder.FromError(err)
		return
	}

	builder.SuccessOK(menu)
}
