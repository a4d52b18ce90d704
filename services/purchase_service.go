package services

import (
	"fmt"

	"github.com/buildledger/dto"
	"github.com/buildledger/models"
	"github.com/buildledger/repositories"
)

// PurchaseService handles business logic for purchases
type PurchaseService struct {
	purchaseRepo *repositories.PurchaseRepository
	itemRepo     *repositories.ItemRepository
	phaseRepo    *repositories.PhaseRepository
	projectRepo  *repositories.ProjectRepository
	vendorRepo   *repositories.VendorRepository
}

// NewPurchaseService creates a new purchase service instance
func NewPurchaseService() *PurchaseService {
	return &PurchaseService{
		purchaseRepo: repositories.NewPurchaseRepository(),
		itemRepo:     repositories.NewItemRepository(),
		phaseRepo:    repositories.NewPhaseRepository(),
		projectRepo:  repositories.NewProjectRepository(),
		vendorRepo:   repositories.NewVendorRepository(),
	}
}

// ListPurchases retrieves a company's purchases with pagination and filters
func (s *PurchaseService) ListPurchases(filter dto.PurchaseFilter) ([]models.Purchase, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	return s.purchaseRepo.FindWithPagination(
		filter.CompanyID,
		filter.Page,
		filter.PageSize,
		filter.ProjectID,
		filter.PhaseID,
		filter.VendorID,
		filter.From,
		filter.To,
	)
}

// GetPurchase retrieves a purchase scoped to the caller's company
func (s *PurchaseService) GetPurchase(purchaseID, companyID string) (models.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(purchaseID)
	if err != nil {
		return models.Purchase{}, err
	}
	if purchase.CompanyID != companyID {
		return models.Purchase{}, fmt.Errorf("purchase not found in your company")
	}
	return purchase, nil
}

// CreatePurchase records a purchase after validating every reference
// belongs to the caller's company. TotalCost is derived in the model hook
// when not supplied.
func (s *PurchaseService) CreatePurchase(req dto.CreatePurchaseRequest, companyID, userID string) (models.Purchase, error) {
	item, err := s.itemRepo.FindByID(req.ItemID)
	if err != nil || item.CompanyID != companyID {
		return models.Purchase{}, fmt.Errorf("item not found in your company")
	}
	if item.CategoryID != req.CategoryID {
		return models.Purchase{}, fmt.Errorf("item does not belong to the given category")
	}

	phase, err := s.phaseRepo.FindByID(req.PhaseID)
	if err != nil || phase.CompanyID != companyID {
		return models.Purchase{}, fmt.Errorf("phase not found in your company")
	}
	if phase.ProjectID != req.ProjectID {
		return models.Purchase{}, fmt.Errorf("phase does not belong to the given project")
	}

	if req.VendorID != nil {
		vendor, err := s.vendorRepo.FindByID(*req.VendorID)
		if err != nil || vendor.CompanyID != companyID {
			return models.Purchase{}, fmt.Errorf("vendor not found in your company")
		}
	}

	purchase := models.Purchase{
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		TotalCost:    req.TotalCost,
		InvoiceURL:   req.InvoiceURL,
		ItemID:       req.ItemID,
		CategoryID:   req.CategoryID,
		PhaseID:      req.PhaseID,
		ProjectID:    req.ProjectID,
		VendorID:     req.VendorID,
		CompanyID:    companyID,
		CreatedByID:  userID,
	}
	if req.PurchaseDate != nil {
		purchase.PurchaseDate = *req.PurchaseDate
	}

	return s.purchaseRepo.Create(purchase)
}

// UpdatePurchase applies a partial update to a purchase. When quantity or
// price changes without an explicit total, the total is re-derived.
func (s *PurchaseService) UpdatePurchase(purchaseID, companyID string, req dto.UpdatePurchaseRequest) (models.Purchase, error) {
	purchase, err := s.GetPurchase(purchaseID, companyID)
	if err != nil {
		return models.Purchase{}, err
	}

	if req.VendorID != nil {
		vendor, err := s.vendorRepo.FindByID(*req.VendorID)
		if err != nil || vendor.CompanyID != companyID {
			return models.Purchase{}, fmt.Errorf("vendor not found in your company")
		}
		purchase.VendorID = req.VendorID
	}

	amountChanged := false
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return models.Purchase{}, fmt.Errorf("quantity must be positive")
		}
		purchase.Quantity = *req.Quantity
		amountChanged = true
	}
	if req.PricePerUnit != nil {
		if *req.PricePerUnit <= 0 {
			return models.Purchase{}, fmt.Errorf("price per unit must be positive")
		}
		purchase.PricePerUnit = *req.PricePerUnit
		amountChanged = true
	}
	if req.TotalCost != nil {
		purchase.TotalCost = *req.TotalCost
	} else if amountChanged {
		purchase.TotalCost = purchase.Quantity * purchase.PricePerUnit
	}
	if req.PurchaseDate != nil {
		purchase.PurchaseDate = *req.PurchaseDate
	}
	if req.InvoiceURL != nil {
		purchase.InvoiceURL = *req.InvoiceURL
	}

	if err := s.purchaseRepo.Update(purchase); err != nil {
		return models.Purchase{}, err
	}
	return purchase, nil
}

// DeletePurchase removes a purchase record
func (s *PurchaseService) DeletePurchase(purchaseID, companyID string) error {
	if _, err := s.GetPurchase(purchaseID, companyID); err != nil {
		return err
	}
	return s.purchaseRepo.Delete(purchaseID)
}
