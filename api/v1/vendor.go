package v1

import (
	"net/http"

	"github.com/buildledger/dto"
	"github.com/buildledger/middleware"
	"github.com/buildledger/services"
	"github.com/gin-gonic/gin"
)

// VendorController handles vendor-related API endpoints
type VendorController struct {
	vendorService *services.VendorService
}

// NewVendorController creates a new vendor controller
func NewVendorController() *VendorController {
	return &VendorController{
		vendorService: services.NewVendorService(),
	}
}

// RegisterRoutes registers vendor routes
func (vc *VendorController) RegisterRoutes(router *gin.RouterGroup) {
	vendors := router.Group("/vendors")
	{
		vendors.GET("", vc.ListVendors)
		vendors.GET("/:id", vc.GetVendor)
		vendors.POST("", middleware.ManageMiddleware(), vc.CreateVendor)
		vendors.PUT("/:id", middleware.ManageMiddleware(), vc.UpdateVendor)
		vendors.DELETE("/:id", middleware.ManageMiddleware(), vc.DeleteVendor)
	}
}

// ListVendors retrieves all of the company's vendors
func (vc *VendorController) ListVendors(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	vendors, err := vc.vendorService.ListVendors(companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": vendors})
}

// GetVendor retrieves a vendor by ID
func (vc *VendorController) GetVendor(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	vendor, err := vc.vendorService.GetVendor(c.Param("id"), companyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": vendor})
}

// CreateVendor creates a vendor
func (vc *VendorController) CreateVendor(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	vendor, err := vc.vendorService.CreateVendor(req, companyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": vendor})
}

// UpdateVendor applies a partial update to a vendor
func (vc *VendorController) UpdateVendor(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	vendor, err := vc.vendorService.UpdateVendor(c.Param("id"), companyID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": vendor})
}

// DeleteVendor removes a vendor
func (vc *VendorController) DeleteVendor(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := vc.vendorService.DeleteVendor(c.Param("id"), companyID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Vendor deleted"})
}
