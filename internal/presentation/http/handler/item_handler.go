package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/application/service"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/dto/request"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/dto/response"
)

// ItemHandler handles menu item HTTP requests
type ItemHandler struct {
	catalogService *service.CatalogService
}

// NewItemHandler creates a new item handler
func NewItemHandler(catalogService *service.CatalogService) *ItemHandler {
	return &ItemHandler{catalogService: catalogService}
}

// List handles listing active menu items. Pass ?all=true to include
// deactivated items (the admin catalog view).
func (h *ItemHandler) List(c *gin.Context) {
	var (
		items interface{}
		err   error
	)
	if c.Query("all") == "true" {
		items, err = h.catalogService.ListAllItems(c.Request.Context())
	} else {
		items, err = h.catalogService.ListActiveItems(c.Request.Context())
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items retrieved successfully", items)
}

// Create handles creating a menu item
func (h *ItemHandler) Create(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.catalogService.AddItem(c.Request.Context(), &service.ItemInput{
		NameLocal:  req.NameLocal,
		NameCommon: req.NameCommon,
		Price:      decimal.NewFromFloat(req.Price),
		Category:   req.Category,
		ImageRef:   req.ImageRef,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// Update handles updating a menu item
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.catalogService.UpdateItem(c.Request.Context(), id, &service.ItemInput{
		NameLocal:  req.NameLocal,
		NameCommon: req.NameCommon,
		Price:      decimal.NewFromFloat(req.Price),
		Category:   req.Category,
		ImageRef:   req.ImageRef,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// Toggle handles activating or deactivating a menu item
func (h *ItemHandler) Toggle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.ToggleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.catalogService.ToggleItemStatus(c.Request.Context(), id, *req.IsActive); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item status updated", gin.H{"id": id, "is_active": *req.IsActive})
}

// Delete handles deleting a menu item. Items referenced by bills cannot be
// deleted; the service returns a conflict in that case.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.catalogService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
