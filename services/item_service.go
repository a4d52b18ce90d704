package services

import (
	"fmt"

	"github.com/buildledger/dto"
	"github.com/buildledger/models"
	"github.com/buildledger/repositories"
)

// ItemService handles business logic for items
type ItemService struct {
	itemRepo     *repositories.ItemRepository
	categoryRepo *repositories.CategoryRepository
	vendorRepo   *repositories.VendorRepository
}

// NewItemService creates a new item service instance
func NewItemService() *ItemService {
	return &ItemService{
		itemRepo:     repositories.NewItemRepository(),
		categoryRepo: repositories.NewCategoryRepository(),
		vendorRepo:   repositories.NewVendorRepository(),
	}
}

// ListItems retrieves the items of a category within the caller's company
func (s *ItemService) ListItems(categoryID, companyID string) ([]models.Item, error) {
	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category.CompanyID != companyID {
		return nil, fmt.Errorf("category not found in your company")
	}
	return s.itemRepo.FindByCategoryID(categoryID)
}

// GetItem retrieves an item scoped to the caller's company
func (s *ItemService) GetItem(itemID, companyID string) (models.Item, error) {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return models.Item{}, err
	}
	if item.CompanyID != companyID {
		return models.Item{}, fmt.Errorf("item not found in your company")
	}
	return item, nil
}

// CreateItem creates an item under one of the company's categories
func (s *ItemService) CreateItem(req dto.CreateItemRequest, companyID string) (models.Item, error) {
	category, err := s.categoryRepo.FindByID(req.CategoryID)
	if err != nil {
		return models.Item{}, fmt.Errorf("category not found")
	}
	if category.CompanyID != companyID {
		return models.Item{}, fmt.Errorf("category not found in your company")
	}

	if req.DefaultVendorID != nil {
		vendor, err := s.vendorRepo.FindByID(*req.DefaultVendorID)
		if err != nil || vendor.CompanyID != companyID {
			return models.Item{}, fmt.Errorf("default vendor not found in your company")
		}
	}

	item := models.Item{
		Name:            req.Name,
		Unit:            req.Unit,
		Rate:            req.Rate,
		CategoryID:      req.CategoryID,
		CompanyID:       companyID,
		DefaultVendorID: req.DefaultVendorID,
	}
	return s.itemRepo.Create(item)
}

// UpdateItem applies a partial update to an item
func (s *ItemService) UpdateItem(itemID, companyID string, req dto.UpdateItemRequest) (models.Item, error) {
	item, err := s.GetItem(itemID, companyID)
	if err != nil {
		return models.Item{}, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Rate != nil {
		if *req.Rate < 0 {
			return models.Item{}, fmt.Errorf("rate cannot be negative")
		}
		item.Rate = *req.Rate
	}
	if req.DefaultVendorID != nil {
		vendor, err := s.vendorRepo.FindByID(*req.DefaultVendorID)
		if err != nil || vendor.CompanyID != companyID {
			return models.Item{}, fmt.Errorf("default vendor not found in your company")
		}
		item.DefaultVendorID = req.DefaultVendorID
	}

	if err := s.itemRepo.Update(item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// DeleteItem removes an item from the catalog
func (s *ItemService) DeleteItem(itemID, companyID string) error {
	if _, err := s.GetItem(itemID, companyID); err != nil {
		return err
	}
	return s.itemRepo.Delete(itemID)
}
