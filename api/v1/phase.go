package v1

import (
	"net/http"

	"github.com/buildledger/dto"
	"github.com/buildledger/middleware"
	"github.com/buildledger/services"
	"github.com/gin-gonic/gin"
)

// PhaseController handles phase-related API endpoints
type PhaseController struct {
	phaseService *services.PhaseService
}

// NewPhaseController creates a new phase controller
func NewPhaseController() *PhaseController {
	return &PhaseController{
		phaseService: services.NewPhaseService(),
	}
}

// RegisterRoutes registers phase routes
func (pc *PhaseController) RegisterRoutes(router *gin.RouterGroup) {
	phases := router.Group("/phases")
	{
		phases.GET("", pc.ListPhases)
		phases.GET("/:id", pc.GetPhase)
		phases.POST("", middleware.ManageMiddleware(), pc.CreatePhase)
		phases.PUT("/:id", middleware.ManageMiddleware(), pc.UpdatePhase)
		phases.DELETE("/:id", middleware.ManageMiddleware(), pc.DeletePhase)
	}
}

// ListPhases retrieves the phases of a project (?projectId=)
func (pc *PhaseController) ListPhases(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	projectID := c.Query("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "projectId query parameter is required"})
		return
	}

	phases, err := pc.phaseService.ListPhases(projectID, companyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": phases})
}

// GetPhase retrieves a phase by ID
func (pc *PhaseController) GetPhase(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	phase, err := pc.phaseService.GetPhase(c.Param("id"), companyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": phase})
}

// CreatePhase creates a phase under a project
func (pc *PhaseController) CreatePhase(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	phase, err := pc.phaseService.CreatePhase(req, companyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": phase})
}

// UpdatePhase applies a partial update to a phase
func (pc *PhaseController) UpdatePhase(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	phase, err := pc.phaseService.UpdatePhase(c.Param("id"), companyID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": phase})
}

// DeletePhase removes a phase
func (pc *PhaseController) DeletePhase(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := pc.phaseService.DeletePhase(c.Param("id"), companyID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Phase deleted"})
}
