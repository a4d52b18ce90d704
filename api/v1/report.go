package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/buildledger/services"
	"github.com/gin-gonic/gin"
)

// ReportController handles export endpoints
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new report controller
func NewReportController() *ReportController {
	return &ReportController{
		reportService: services.NewReportService(),
	}
}

// RegisterRoutes registers report routes
func (rc *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/reports/purchases.csv", rc.ExportPurchasesCSV)
}

// ExportPurchasesCSV streams the company's purchases as CSV, honoring the
// same filters as the purchase list endpoint.
func (rc *ReportController) ExportPurchasesCSV(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	filter := parsePurchaseFilter(c, companyID)

	filename := fmt.Sprintf("purchases-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := rc.reportService.WritePurchasesCSV(c.Writer, filter); err != nil {
		// Headers are already sent; the truncated body is the best signal left.
		_ = c.Error(err)
	}
}
