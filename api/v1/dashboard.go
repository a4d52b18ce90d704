package v1

import (
	"net/http"

	"github.com/buildledger/services"
	"github.com/gin-gonic/gin"
)

// DashboardController handles the company dashboard endpoint
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController() *DashboardController {
	return &DashboardController{
		dashboardService: services.NewDashboardService(),
	}
}

// RegisterRoutes registers dashboard routes
func (dc *DashboardController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", dc.GetDashboard)
}

// GetDashboard returns the company-wide rollup
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	dashboard, err := dc.dashboardService.GetDashboard(companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": dashboard})
}
