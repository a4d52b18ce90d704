package repositories

import (
	"github.com/buildledger/database"
	"github.com/buildledger/models"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct{}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// FindByID retrieves a category by its ID
func (r *CategoryRepository) FindByID(id string) (models.Category, error) {
	var category models.Category
	result := database.DB().First(&category, "id = ?", id)
	return category, result.Error
}

// FindByPhaseID retrieves all categories belonging to a phase
func (r *CategoryRepository) FindByPhaseID(phaseID string) ([]models.Category, error) {
	var categories []models.Category
	result := database.DB().Where("phase_id = ?", phaseID).Find(&categories)
	return categories, result.Error
}

// FindByCompanyID retrieves all categories belonging to a company
func (r *CategoryRepository) FindByCompanyID(companyID string) ([]models.Category, error) {
	var categories []models.Category
	result := database.DB().Where("company_id = ?", companyID).Find(&categories)
	return categories, result.Error
}

// Create inserts a new category into the database
func (r *CategoryRepository) Create(category models.Category) (models.Category, error) {
	result := database.DB().Create(&category)
	return category, result.Error
}

// Update modifies an existing category
func (r *CategoryRepository) Update(category models.Category) error {
	result := database.DB().Save(&category)
	return result.Error
}

// Delete removes a category. Items under it are left untouched.
func (r *CategoryRepository) Delete(id string) error {
	result := database.DB().Delete(&models.Category{}, "id = ?", id)
	return result.Error
}
