package handler

import (
	"net/http"

	"costr/internal/service"
	"costr/pkg/pagination"
	"costr/pkg/response"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/api/inventory")
	{
		inventory.GET("", h.ListItems)
		inventory.POST("", h.CreateItem)
		inventory.GET("/:id", h.GetItem)
		inventory.PUT("/:id", h.UpdateItem)
		inventory.DELETE("/:id", h.DeleteItem)
		inventory.POST("/:id/adjust-stock", h.AdjustStock)
	}
}

// ListItems handles retrieving paginated inventory items
// @Summary      List inventory items
// @Description  Retrieves a paginated list of items with current stock
// @Tags         inventory
// @Produce      json
// @Param        search  query     string  false  "Search by name, SKU or supplier"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=response.Page{items=[]model.InventoryItem}}
// @Router       /api/inventory [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	p := pagination.Parse(c)
	items := h.inventoryService.ListItems(c.Query("search"))
	c.JSON(http.StatusOK, response.Paged(http.StatusOK, pagination.Window(items, p), len(items), p.Page, p.Limit))
}

// GetItem returns one inventory item
// @Summary      Get inventory item
// @Tags         inventory
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  response.Response{data=model.InventoryItem}
// @Failure      404  {object}  response.Response
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.inventoryService.GetItem(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// CreateItem creates a new inventory item
// @Summary      Create inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        payload  body      service.InventoryItemRequest  true  "Inventory Item Payload"
// @Success      201      {object}  response.Response{data=model.InventoryItem}
// @Failure      400      {object}  response.Response
// @Router       /api/inventory [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req service.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// UpdateItem updates an existing item's details
// @Summary      Update inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Item ID"
// @Param        payload  body      service.InventoryItemRequest  true  "Inventory Item Payload"
// @Success      200      {object}  response.Response{data=model.InventoryItem}
// @Failure      404      {object}  response.Response
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	var req service.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// DeleteItem removes an inventory item
// @Summary      Delete inventory item
// @Tags         inventory
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	if err := h.inventoryService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Inventory item deleted successfully"))
}

// AdjustStock adds or removes stock
// @Summary      Adjust stock
// @Description  Adds quantityChange (negative to remove) to the stock on hand, never going below zero
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Item ID"
// @Param        payload  body      service.AdjustStockRequest  true  "Adjustment"
// @Success      200      {object}  response.Response{data=model.InventoryItem}
// @Failure      404      {object}  response.Response
// @Router       /api/inventory/{id}/adjust-stock [post]
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var req service.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.inventoryService.AdjustStock(c.Request.Context(), c.Param("id"), req.QuantityChange)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}
