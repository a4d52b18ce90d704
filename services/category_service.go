package services

import (
	"fmt"

	"github.com/buildledger/dto"
	"github.com/buildledger/models"
	"github.com/buildledger/repositories"
)

// CategoryService handles business logic for categories
type CategoryService struct {
	categoryRepo *repositories.CategoryRepository
	phaseRepo    *repositories.PhaseRepository
}

// NewCategoryService creates a new category service instance
func NewCategoryService() *CategoryService {
	return &CategoryService{
		categoryRepo: repositories.NewCategoryRepository(),
		phaseRepo:    repositories.NewPhaseRepository(),
	}
}

// ListCategories retrieves the categories of a phase within the caller's
// company
func (s *CategoryService) ListCategories(phaseID, companyID string) ([]models.Category, error) {
	phase, err := s.phaseRepo.FindByID(phaseID)
	if err != nil {
		return nil, err
	}
	if phase.CompanyID != companyID {
		return nil, fmt.Errorf("phase not found in your company")
	}
	return s.categoryRepo.FindByPhaseID(phaseID)
}

// GetCategory retrieves a category scoped to the caller's company
func (s *CategoryService) GetCategory(categoryID, companyID string) (models.Category, error) {
	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		return models.Category{}, err
	}
	if category.CompanyID != companyID {
		return models.Category{}, fmt.Errorf("category not found in your company")
	}
	return category, nil
}

// CreateCategory creates a category under one of the company's phases
func (s *CategoryService) CreateCategory(req dto.CreateCategoryRequest, companyID string) (models.Category, error) {
	phase, err := s.phaseRepo.FindByID(req.PhaseID)
	if err != nil {
		return models.Category{}, fmt.Errorf("phase not found")
	}
	if phase.CompanyID != companyID {
		return models.Category{}, fmt.Errorf("phase not found in your company")
	}

	category := models.Category{
		Name:      req.Name,
		PhaseID:   req.PhaseID,
		CompanyID: companyID,
	}
	return s.categoryRepo.Create(category)
}

// UpdateCategory renames a category
func (s *CategoryService) UpdateCategory(categoryID, companyID string, req dto.UpdateCategoryRequest) (models.Category, error) {
	category, err := s.GetCategory(categoryID, companyID)
	if err != nil {
		return models.Category{}, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// DeleteCategory removes a category. Its items are left untouched.
func (s *CategoryService) DeleteCategory(categoryID, companyID string) error {
	if _, err := s.GetCategory(categoryID, companyID); err != nil {
		return err
	}
	return s.categoryRepo.Delete(categoryID)
}
