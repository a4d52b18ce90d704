package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/buildledger/dto"
	"github.com/buildledger/middleware"
	"github.com/buildledger/services"
	"github.com/gin-gonic/gin"
)

// PurchaseController handles purchase-related API endpoints
type PurchaseController struct {
	purchaseService *services.PurchaseService
}

// NewPurchaseController creates a new purchase controller
func NewPurchaseController() *PurchaseController {
	return &PurchaseController{
		purchaseService: services.NewPurchaseService(),
	}
}

// RegisterRoutes registers purchase routes. Any authenticated member can
// read and record purchases; changing or removing a record requires a
// managing role.
func (pc *PurchaseController) RegisterRoutes(router *gin.RouterGroup) {
	purchases := router.Group("/purchases")
	{
		purchases.GET("", pc.ListPurchases)
		purchases.GET("/:id", pc.GetPurchase)
		purchases.POST("", pc.CreatePurchase)
		purchases.PUT("/:id", middleware.ManageMiddleware(), pc.UpdatePurchase)
		purchases.DELETE("/:id", middleware.ManageMiddleware(), pc.DeletePurchase)
	}
}

// parsePurchaseFilter reads common list/export query parameters.
func parsePurchaseFilter(c *gin.Context, companyID string) dto.PurchaseFilter {
	filter := dto.PurchaseFilter{
		CompanyID: companyID,
		ProjectID: c.Query("projectId"),
		PhaseID:   c.Query("phaseId"),
		VendorID:  c.Query("vendorId"),
	}

	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filter.From = &t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
			filter.To = &end
		}
	}

	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && page > 0 {
		filter.Page = page
	}
	if pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20")); err == nil && pageSize > 0 {
		filter.PageSize = pageSize
	}

	return filter
}

// ListPurchases retrieves the company's purchases with filters and
// pagination
func (pc *PurchaseController) ListPurchases(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	filter := parsePurchaseFilter(c, companyID)

	purchases, totalCount, err := pc.purchaseService.ListPurchases(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"purchases":  purchases,
			"totalCount": totalCount,
			"page":       filter.Page,
			"pageSize":   filter.PageSize,
		},
	})
}

// GetPurchase retrieves a purchase by ID
func (pc *PurchaseController) GetPurchase(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	purchase, err := pc.purchaseService.GetPurchase(c.Param("id"), companyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": purchase})
}

// CreatePurchase records a purchase
func (pc *PurchaseController) CreatePurchase(c *gin.Context) {
	userID, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	purchase, err := pc.purchaseService.CreatePurchase(req, companyID, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": purchase})
}

// UpdatePurchase applies a partial update to a purchase
func (pc *PurchaseController) UpdatePurchase(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	purchase, err := pc.purchaseService.UpdatePurchase(c.Param("id"), companyID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": purchase})
}

// DeletePurchase removes a purchase record
func (pc *PurchaseController) DeletePurchase(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := pc.purchaseService.DeletePurchase(c.Param("id"), companyID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Purchase deleted"})
}
