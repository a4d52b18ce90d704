package repositories

import (
	"strings"

	"github.com/buildledger/database"
	"github.com/buildledger/models"
)

// PhaseRepository handles database operations for phases
type PhaseRepository struct{}

// NewPhaseRepository creates a new phase repository instance
func NewPhaseRepository() *PhaseRepository {
	return &PhaseRepository{}
}

// FindByID retrieves a phase by its ID
func (r *PhaseRepository) FindByID(id string) (models.Phase, error) {
	var phase models.Phase
	result := database.DB().First(&phase, "id = ?", id)
	return phase, result.Error
}

// FindByProjectID retrieves all phases belonging to a project
func (r *PhaseRepository) FindByProjectID(projectID string) ([]models.Phase, error) {
	var phases []models.Phase
	result := database.DB().Where("project_id = ?", projectID).Find(&phases)
	return phases, result.Error
}

// FindByCompanyID retrieves all phases belonging to a company
func (r *PhaseRepository) FindByCompanyID(companyID string) ([]models.Phase, error) {
	var phases []models.Phase
	result := database.DB().Where("company_id = ?", companyID).Find(&phases)
	return phases, result.Error
}

// FindByNameExact retrieves a company's phase by case-insensitive exact name.
func (r *PhaseRepository) FindByNameExact(companyID, name string) (models.Phase, error) {
	var phase models.Phase
	result := database.DB().
		Where("company_id = ? AND LOWER(name) = ?", companyID, strings.ToLower(name)).
		First(&phase)
	return phase, result.Error
}

// FindByNamePartial retrieves a company's phase by case-insensitive
// substring match.
func (r *PhaseRepository) FindByNamePartial(companyID, name string) (models.Phase, error) {
	var phase models.Phase
	pattern := "%" + strings.ToLower(name) + "%"
	result := database.DB().
		Where("company_id = ? AND LOWER(name) LIKE ?", companyID, pattern).
		First(&phase)
	return phase, result.Error
}

// Names returns up to limit phase names for a company.
func (r *PhaseRepository) Names(companyID string, limit int) ([]string, error) {
	var names []string
	result := database.DB().Model(&models.Phase{}).
		Where("company_id = ?", companyID).
		Limit(limit).
		Pluck("name", &names)
	return names, result.Error
}

// Create inserts a new phase into the database
func (r *PhaseRepository) Create(phase models.Phase) (models.Phase, error) {
	result := database.DB().Create(&phase)
	return phase, result.Error
}

// Update modifies an existing phase
func (r *PhaseRepository) Update(phase models.Phase) error {
	result := database.DB().Save(&phase)
	return result.Error
}

// Delete removes a phase. Categories under it are left untouched.
func (r *PhaseRepository) Delete(id string) error {
	result := database.DB().Delete(&models.Phase{}, "id = ?", id)
	return result.Error
}

// CountByProjectID counts phases belonging to a project
func (r *PhaseRepository) CountByProjectID(projectID string) (int64, error) {
	var count int64
	result := database.DB().Model(&models.Phase{}).Where("project_id = ?", projectID).Count(&count)
	return count, result.Error
}
