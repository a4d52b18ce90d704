package services

import (
	"fmt"
	"math"
	"time"

	"github.com/buildledger/dto"
	"github.com/buildledger/models"
	"github.com/buildledger/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo  *repositories.ProjectRepository
	phaseRepo    *repositories.PhaseRepository
	purchaseRepo *repositories.PurchaseRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo:  repositories.NewProjectRepository(),
		phaseRepo:    repositories.NewPhaseRepository(),
		purchaseRepo: repositories.NewPurchaseRepository(),
	}
}

// ListProjects retrieves a company's projects with pagination, filtering
// and sorting
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}

	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}

	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}

	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"name":       true,
		"budget":     true,
		"status":     true,
	}

	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.CompanyID,
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.Search,
	)

	if err != nil {
		return response, err
	}

	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}

// GetProjectDetail retrieves a project by ID with its phases. Access is
// limited to the caller's company.
func (s *ProjectService) GetProjectDetail(projectID, companyID string) (models.Project, error) {
	project, err := s.projectRepo.WithPhases(projectID)
	if err != nil {
		return models.Project{}, err
	}

	if project.CompanyID != companyID {
		return models.Project{}, fmt.Errorf("project not found in your company")
	}

	return project, nil
}

// GetProjectStats computes budget/spend statistics for a project. Spend is
// summed live from purchases on every call.
func (s *ProjectService) GetProjectStats(projectID, companyID string) (dto.ProjectStatsResponse, error) {
	var stats dto.ProjectStatsResponse

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return stats, err
	}

	if project.CompanyID != companyID {
		return stats, fmt.Errorf("project not found in your company")
	}

	stats.Project.ID = project.ID
	stats.Project.Name = project.Name
	stats.Project.Client = project.Client
	stats.Project.Status = string(project.Status)
	stats.Project.Budget = project.Budget
	stats.Project.CreatedAt = project.CreatedAt.Format(time.RFC3339)

	spent, err := s.purchaseRepo.SumByProjectID(projectID)
	if err != nil {
		return stats, err
	}
	purchaseCount, err := s.purchaseRepo.CountByProjectID(projectID)
	if err != nil {
		return stats, err
	}

	stats.Spending.Spent = spent
	stats.Spending.Remaining = project.Budget - spent
	stats.Spending.PercentUsed = PercentUsed(spent, project.Budget)
	stats.Spending.PurchaseCount = purchaseCount

	phases, err := s.phaseRepo.FindByProjectID(projectID)
	if err != nil {
		return stats, err
	}

	stats.Phases = make([]dto.ProjectPhaseStatsItem, 0, len(phases))
	for _, phase := range phases {
		phaseSpent, err := s.purchaseRepo.SumByPhaseID(phase.ID)
		if err != nil {
			return stats, err
		}
		phaseCount, err := s.purchaseRepo.CountByPhaseID(phase.ID)
		if err != nil {
			return stats, err
		}
		stats.Phases = append(stats.Phases, dto.ProjectPhaseStatsItem{
			ID:            phase.ID,
			Name:          phase.Name,
			Budget:        phase.Budget,
			Spent:         phaseSpent,
			Remaining:     phase.Budget - phaseSpent,
			PurchaseCount: phaseCount,
		})
	}

	return stats, nil
}

// CreateProject creates a new project for a company
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest, companyID, userID string) (models.Project, error) {
	status := models.ProjectStatus(req.Status)
	if req.Status == "" {
		status = models.ProjectStatusStartingSoon
	}
	if !models.ValidProjectStatus(status) {
		return models.Project{}, fmt.Errorf("invalid project status: %s", req.Status)
	}

	project := models.Project{
		Name:        req.Name,
		Client:      req.Client,
		Budget:      req.Budget,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CompanyID:   companyID,
		CreatedByID: userID,
	}

	return s.projectRepo.Create(project)
}

// UpdateProject applies a partial update to an existing project
func (s *ProjectService) UpdateProject(projectID, companyID string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Project{}, err
	}

	if project.CompanyID != companyID {
		return models.Project{}, fmt.Errorf("project not found in your company")
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Client != nil {
		project.Client = *req.Client
	}
	if req.Budget != nil {
		if *req.Budget < 0 {
			return models.Project{}, fmt.Errorf("budget cannot be negative")
		}
		project.Budget = *req.Budget
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		if !models.ValidProjectStatus(status) {
			return models.Project{}, fmt.Errorf("invalid project status: %s", *req.Status)
		}
		project.Status = status
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}

	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// DeleteProject removes a project. Phases, categories and purchases under
// it are left in place: deletion does not cascade.
func (s *ProjectService) DeleteProject(projectID, companyID string) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return err
	}

	if project.CompanyID != companyID {
		return fmt.Errorf("project not found in your company")
	}

	return s.projectRepo.Delete(projectID)
}

// PercentUsed computes spend as a share of budget, rounded to one decimal.
// A zero budget yields 0.0 rather than dividing by zero.
func PercentUsed(spent, budget float64) float64 {
	if budget == 0 {
		return 0.0
	}
	return math.Round(spent/budget*1000) / 10
}
