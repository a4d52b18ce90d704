package repositories

import (
	"time"

	"github.com/buildledger/database"
	"github.com/buildledger/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PurchaseRepository handles database operations for purchases
type PurchaseRepository struct{}

// NewPurchaseRepository creates a new purchase repository instance
func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{}
}

// FindByID retrieves a purchase by its ID with its relations
func (r *PurchaseRepository) FindByID(id string) (models.Purchase, error) {
	var purchase models.Purchase
	result := database.DB().
		Preload("Item").
		Preload("Vendor").
		Preload("Project").
		First(&purchase, "id = ?", id)
	return purchase, result.Error
}

// Create inserts a new purchase into the database
func (r *PurchaseRepository) Create(purchase models.Purchase) (models.Purchase, error) {
	result := database.DB().Create(&purchase)
	return purchase, result.Error
}

// Update modifies an existing purchase. Associations loaded on the struct
// are skipped so a save never touches item or project rows.
func (r *PurchaseRepository) Update(purchase models.Purchase) error {
	result := database.DB().Omit(clause.Associations).Save(&purchase)
	return result.Error
}

// Delete removes a purchase from the database
func (r *PurchaseRepository) Delete(id string) error {
	result := database.DB().Delete(&models.Purchase{}, "id = ?", id)
	return result.Error
}

// SumByPhaseID sums totalCost over a phase's purchases. Spend is always
// computed live from purchase rows, never read from a stored counter.
func (r *PurchaseRepository) SumByPhaseID(phaseID string) (float64, error) {
	var total float64
	result := database.DB().Model(&models.Purchase{}).
		Where("phase_id = ?", phaseID).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&total)
	return total, result.Error
}

// CountByPhaseID counts purchases referencing a phase
func (r *PurchaseRepository) CountByPhaseID(phaseID string) (int64, error) {
	var count int64
	result := database.DB().Model(&models.Purchase{}).Where("phase_id = ?", phaseID).Count(&count)
	return count, result.Error
}

// SumByProjectID sums totalCost over a project's purchases
func (r *PurchaseRepository) SumByProjectID(projectID string) (float64, error) {
	var total float64
	result := database.DB().Model(&models.Purchase{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&total)
	return total, result.Error
}

// CountByProjectID counts purchases referencing a project
func (r *PurchaseRepository) CountByProjectID(projectID string) (int64, error) {
	var count int64
	result := database.DB().Model(&models.Purchase{}).Where("project_id = ?", projectID).Count(&count)
	return count, result.Error
}

// SumByCompanyID sums totalCost over all of a company's purchases
func (r *PurchaseRepository) SumByCompanyID(companyID string) (float64, error) {
	var total float64
	result := database.DB().Model(&models.Purchase{}).
		Where("company_id = ?", companyID).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&total)
	return total, result.Error
}

// CountByCompanyID counts purchases belonging to a company
func (r *PurchaseRepository) CountByCompanyID(companyID string) (int64, error) {
	var count int64
	result := database.DB().Model(&models.Purchase{}).Where("company_id = ?", companyID).Count(&count)
	return count, result.Error
}

// FindInWindow retrieves a company's purchases in an optional date window,
// newest first, with item, vendor and project resolved.
func (r *PurchaseRepository) FindInWindow(companyID string, from, to *time.Time) ([]models.Purchase, error) {
	var purchases []models.Purchase
	db := database.DB().
		Preload("Item").
		Preload("Vendor").
		Preload("Project").
		Where("company_id = ?", companyID)

	if from != nil {
		db = db.Where("purchase_date >= ?", *from)
	}
	if to != nil {
		db = db.Where("purchase_date <= ?", *to)
	}

	result := db.Order("purchase_date DESC").Find(&purchases)
	return purchases, result.Error
}

// FindForVendorRollup retrieves a company's purchases with vendor and item
// resolved, optionally scoped to a project. Grouping happens in the caller.
func (r *PurchaseRepository) FindForVendorRollup(companyID, projectID string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	db := database.DB().
		Preload("Vendor").
		Preload("Item").
		Where("company_id = ?", companyID)

	if projectID != "" {
		db = db.Where("project_id = ?", projectID)
	}

	result := db.Find(&purchases)
	return purchases, result.Error
}

// FindSince retrieves a company's purchases on or after a given date.
func (r *PurchaseRepository) FindSince(companyID string, since time.Time) ([]models.Purchase, error) {
	var purchases []models.Purchase
	result := database.DB().
		Where("company_id = ? AND purchase_date >= ?", companyID, since).
		Find(&purchases)
	return purchases, result.Error
}

// DB returns the database instance
func (r *PurchaseRepository) DB() *gorm.DB {
	return database.DB()
}

// FindWithPagination retrieves a company's purchases with pagination and
// optional project/phase/vendor/date filters
func (r *PurchaseRepository) FindWithPagination(
	companyID string,
	page, pageSize int,
	projectID, phaseID, vendorID string,
	from, to *time.Time) ([]models.Purchase, int64, error) {

	var purchases []models.Purchase
	var totalCount int64

	db := database.DB().Model(&models.Purchase{}).Where("company_id = ?", companyID)

	if projectID != "" {
		db = db.Where("project_id = ?", projectID)
	}
	if phaseID != "" {
		db = db.Where("phase_id = ?", phaseID)
	}
	if vendorID != "" {
		db = db.Where("vendor_id = ?", vendorID)
	}
	if from != nil {
		db = db.Where("purchase_date >= ?", *from)
	}
	if to != nil {
		db = db.Where("purchase_date <= ?", *to)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	err := db.
		Preload("Item").
		Preload("Vendor").
		Order("purchase_date DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&purchases).Error
	if err != nil {
		return nil, 0, err
	}

	return purchases, totalCount, nil
}
