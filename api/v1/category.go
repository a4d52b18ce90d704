package v1

import (
	"net/http"

	"github.com/buildledger/dto"
	"github.com/buildledger/middleware"
	"github.com/buildledger/services"
	"github.com/gin-gonic/gin"
)

// CategoryController handles category-related API endpoints
type CategoryController struct {
	categoryService *services.CategoryService
}

// NewCategoryController creates a new category controller
func NewCategoryController() *CategoryController {
	return &CategoryController{
		categoryService: services.NewCategoryService(),
	}
}

// RegisterRoutes registers category routes
func (cc *CategoryController) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", cc.ListCategories)
		categories.GET("/:id", cc.GetCategory)
		categories.POST("", middleware.ManageMiddleware(), cc.CreateCategory)
		categories.PUT("/:id", middleware.ManageMiddleware(), cc.UpdateCategory)
		categories.DELETE("/:id", middleware.ManageMiddleware(), cc.DeleteCategory)
	}
}

// ListCategories retrieves the categories of a phase (?phaseId=)
func (cc *CategoryController) ListCategories(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	phaseID := c.Query("phaseId")
	if phaseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "phaseId query parameter is required"})
		return
	}

	categories, err := cc.categoryService.ListCategories(phaseID, companyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": categories})
}

// GetCategory retrieves a category by ID
func (cc *CategoryController) GetCategory(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	category, err := cc.categoryService.GetCategory(c.Param("id"), companyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": category})
}

// CreateCategory creates a category under a phase
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	category, err := cc.categoryService.CreateCategory(req, companyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": category})
}

// UpdateCategory renames a category
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	category, err := cc.categoryService.UpdateCategory(c.Param("id"), companyID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": category})
}

// DeleteCategory removes a category
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := cc.categoryService.DeleteCategory(c.Param("id"), companyID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Category deleted"})
}
