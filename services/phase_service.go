package services

import (
	"fmt"

	"github.com/buildledger/dto"
	"github.com/buildledger/models"
	"github.com/buildledger/repositories"
)

// PhaseService handles business logic for phases
type PhaseService struct {
	phaseRepo   *repositories.PhaseRepository
	projectRepo *repositories.ProjectRepository
}

// NewPhaseService creates a new phase service instance
func NewPhaseService() *PhaseService {
	return &PhaseService{
		phaseRepo:   repositories.NewPhaseRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListPhases retrieves the phases of a project within the caller's company
func (s *PhaseService) ListPhases(projectID, companyID string) ([]models.Phase, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, err
	}
	if project.CompanyID != companyID {
		return nil, fmt.Errorf("project not found in your company")
	}
	return s.phaseRepo.FindByProjectID(projectID)
}

// GetPhase retrieves a phase scoped to the caller's company
func (s *PhaseService) GetPhase(phaseID, companyID string) (models.Phase, error) {
	phase, err := s.phaseRepo.FindByID(phaseID)
	if err != nil {
		return models.Phase{}, err
	}
	if phase.CompanyID != companyID {
		return models.Phase{}, fmt.Errorf("phase not found in your company")
	}
	return phase, nil
}

// CreatePhase creates a phase under one of the company's projects
func (s *PhaseService) CreatePhase(req dto.CreatePhaseRequest, companyID string) (models.Phase, error) {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		return models.Phase{}, fmt.Errorf("project not found")
	}
	if project.CompanyID != companyID {
		return models.Phase{}, fmt.Errorf("project not found in your company")
	}

	phase := models.Phase{
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		ProjectID:   req.ProjectID,
		CompanyID:   companyID,
	}
	return s.phaseRepo.Create(phase)
}

// UpdatePhase applies a partial update to a phase
func (s *PhaseService) UpdatePhase(phaseID, companyID string, req dto.UpdatePhaseRequest) (models.Phase, error) {
	phase, err := s.GetPhase(phaseID, companyID)
	if err != nil {
		return models.Phase{}, err
	}

	if req.Name != nil {
		phase.Name = *req.Name
	}
	if req.Description != nil {
		phase.Description = *req.Description
	}
	if req.Budget != nil {
		if *req.Budget < 0 {
			return models.Phase{}, fmt.Errorf("budget cannot be negative")
		}
		phase.Budget = *req.Budget
	}

	if err := s.phaseRepo.Update(phase); err != nil {
		return models.Phase{}, err
	}
	return phase, nil
}

// DeletePhase removes a phase. Its categories are left untouched.
func (s *PhaseService) DeletePhase(phaseID, companyID string) error {
	if _, err := s.GetPhase(phaseID, companyID); err != nil {
		return err
	}
	return s.phaseRepo.Delete(phaseID)
}
