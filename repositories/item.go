package repositories

import (
	"github.com/buildledger/database"
	"github.com/buildledger/models"
)

// ItemRepository handles database operations for items
type ItemRepository struct{}

// NewItemRepository creates a new item repository instance
func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

// FindByID retrieves an item by its ID
func (r *ItemRepository) FindByID(id string) (models.Item, error) {
	var item models.Item
	result := database.DB().First(&item, "id = ?", id)
	return item, result.Error
}

// FindByCategoryID retrieves all items belonging to a category
func (r *ItemRepository) FindByCategoryID(categoryID string) ([]models.Item, error) {
	var items []models.Item
	result := database.DB().Where("category_id = ?", categoryID).Find(&items)
	return items, result.Error
}

// FindByCompanyID retrieves all items belonging to a company
func (r *ItemRepository) FindByCompanyID(companyID string) ([]models.Item, error) {
	var items []models.Item
	result := database.DB().Where("company_id = ?", companyID).Find(&items)
	return items, result.Error
}

// Create inserts a new item into the database
func (r *ItemRepository) Create(item models.Item) (models.Item, error) {
	result := database.DB().Create(&item)
	return item, result.Error
}

// Update modifies an existing item
func (r *ItemRepository) Update(item models.Item) error {
	result := database.DB().Save(&item)
	return result.Error
}

// Delete removes an item from the database
func (r *ItemRepository) Delete(id string) error {
	result := database.DB().Delete(&models.Item{}, "id = ?", id)
	return result.Error
}
