package v1

import (
	"net/http"

	"github.com/buildledger/dto"
	"github.com/buildledger/middleware"
	"github.com/buildledger/services"
	"github.com/gin-gonic/gin"
)

// ItemController handles item catalog API endpoints
type ItemController struct {
	itemService *services.ItemService
}

// NewItemController creates a new item controller
func NewItemController() *ItemController {
	return &ItemController{
		itemService: services.NewItemService(),
	}
}

// RegisterRoutes registers item routes
func (ic *ItemController) RegisterRoutes(router *gin.RouterGroup) {
	items := router.Group("/items")
	{
		items.GET("", ic.ListItems)
		items.GET("/:id", ic.GetItem)
		items.POST("", middleware.ManageMiddleware(), ic.CreateItem)
		items.PUT("/:id", middleware.ManageMiddleware(), ic.UpdateItem)
		items.DELETE("/:id", middleware.ManageMiddleware(), ic.DeleteItem)
	}
}

// ListItems retrieves the items of a category (?categoryId=)
func (ic *ItemController) ListItems(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	categoryID := c.Query("categoryId")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "categoryId query parameter is required"})
		return
	}

	items, err := ic.itemService.ListItems(categoryID, companyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": items})
}

// GetItem retrieves an item by ID
func (ic *ItemController) GetItem(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	item, err := ic.itemService.GetItem(c.Param("id"), companyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": item})
}

// CreateItem adds an item to the catalog
func (ic *ItemController) CreateItem(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	item, err := ic.itemService.CreateItem(req, companyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": item})
}

// UpdateItem applies a partial update to an item
func (ic *ItemController) UpdateItem(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	item, err := ic.itemService.UpdateItem(c.Param("id"), companyID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": item})
}

// DeleteItem removes an item from the catalog
func (ic *ItemController) DeleteItem(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := ic.itemService.DeleteItem(c.Param("id"), companyID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Item deleted"})
}
