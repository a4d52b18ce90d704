package repositories

import (
	"github.com/buildledger/database"
	"github.com/buildledger/models"
)

// VendorRepository handles database operations for vendors
type VendorRepository struct{}

// NewVendorRepository creates a new vendor repository instance
func NewVendorRepository() *VendorRepository {
	return &VendorRepository{}
}

// FindByID retrieves a vendor by its ID
func (r *VendorRepository) FindByID(id string) (models.Vendor, error) {
	var vendor models.Vendor
	result := database.DB().First(&vendor, "id = ?", id)
	return vendor, result.Error
}

// FindByCompanyID retrieves all vendors belonging to a company
func (r *VendorRepository) FindByCompanyID(companyID string) ([]models.Vendor, error) {
	var vendors []models.Vendor
	result := database.DB().Where("company_id = ?", companyID).Order("name").Find(&vendors)
	return vendors, result.Error
}

// Names returns up to limit vendor names for a company.
func (r *VendorRepository) Names(companyID string, limit int) ([]string, error) {
	var names []string
	result := database.DB().Model(&models.Vendor{}).
		Where("company_id = ?", companyID).
		Order("name").
		Limit(limit).
		Pluck("name", &names)
	return names, result.Error
}

// Create inserts a new vendor into the database
func (r *VendorRepository) Create(vendor models.Vendor) (models.Vendor, error) {
	result := database.DB().Create(&vendor)
	return vendor, result.Error
}

// Update modifies an existing vendor
func (r *VendorRepository) Update(vendor models.Vendor) error {
	result := database.DB().Save(&vendor)
	return result.Error
}

// Delete removes a vendor from the database
func (r *VendorRepository) Delete(id string) error {
	result := database.DB().Delete(&models.Vendor{}, "id = ?", id)
	return result.Error
}

// CountByCompanyID counts vendors belonging to a company
func (r *VendorRepository) CountByCompanyID(companyID string) (int64, error) {
	var count int64
	result := database.DB().Model(&models.Vendor{}).Where("company_id = ?", companyID).Count(&count)
	return count, result.Error
}
