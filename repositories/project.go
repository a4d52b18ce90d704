package repositories

import (
	"strings"

	"github.com/buildledger/database"
	"github.com/buildledger/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByCompanyID retrieves all projects belonging to a company
func (r *ProjectRepository) FindByCompanyID(companyID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB().Where("company_id = ?", companyID).Find(&projects)
	return projects, result.Error
}

// FindRecent retrieves up to limit projects for a company, newest first.
func (r *ProjectRepository) FindRecent(companyID string, limit int) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB().
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Limit(limit).
		Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB().First(&project, "id = ?", id)
	return project, result.Error
}

// FindByNameExact retrieves a company's project by case-insensitive exact name.
func (r *ProjectRepository) FindByNameExact(companyID, name string) (models.Project, error) {
	var project models.Project
	result := database.DB().
		Where("company_id = ? AND LOWER(name) = ?", companyID, strings.ToLower(name)).
		First(&project)
	return project, result.Error
}

// FindByNamePartial retrieves a company's project by case-insensitive
// substring match.
func (r *ProjectRepository) FindByNamePartial(companyID, name string) (models.Project, error) {
	var project models.Project
	pattern := "%" + strings.ToLower(name) + "%"
	result := database.DB().
		Where("company_id = ? AND LOWER(name) LIKE ?", companyID, pattern).
		First(&project)
	return project, result.Error
}

// Names returns up to limit project names for a company, newest first.
func (r *ProjectRepository) Names(companyID string, limit int) ([]string, error) {
	var names []string
	result := database.DB().Model(&models.Project{}).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Limit(limit).
		Pluck("name", &names)
	return names, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB().Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB().Save(&project)
	return result.Error
}

// Delete removes a project (soft delete). Children are deliberately left
// in place: there is no cascade.
func (r *ProjectRepository) Delete(id string) error {
	result := database.DB().Delete(&models.Project{}, "id = ?", id)
	return result.Error
}

// WithPhases loads a project with its phases
func (r *ProjectRepository) WithPhases(id string) (models.Project, error) {
	var project models.Project
	result := database.DB().Preload("Phases").First(&project, "id = ?", id)
	return project, result.Error
}

// CountByCompanyID counts projects belonging to a company
func (r *ProjectRepository) CountByCompanyID(companyID string) (int64, error) {
	var count int64
	result := database.DB().Model(&models.Project{}).Where("company_id = ?", companyID).Count(&count)
	return count, result.Error
}

// DB returns the database instance
func (r *ProjectRepository) DB() *gorm.DB {
	return database.DB()
}

// FindWithPagination retrieves a company's projects with pagination,
// filtering and sorting
func (r *ProjectRepository) FindWithPagination(
	companyID string,
	page, pageSize int,
	sortBy, sortOrder string,
	search string) ([]models.Project, int64, error) {

	var projects []models.Project
	var totalCount int64

	db := database.DB().Model(&models.Project{}).Where("company_id = ?", companyID)

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		db = db.Where("(LOWER(name) LIKE ? OR LOWER(client) LIKE ?)", pattern, pattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}
