package services

import (
	"fmt"

	"github.com/buildledger/dto"
	"github.com/buildledger/models"
	"github.com/buildledger/repositories"
)

// VendorService handles business logic for vendors
type VendorService struct {
	vendorRepo *repositories.VendorRepository
}

// NewVendorService creates a new vendor service instance
func NewVendorService() *VendorService {
	return &VendorService{
		vendorRepo: repositories.NewVendorRepository(),
	}
}

// ListVendors retrieves all of a company's vendors
func (s *VendorService) ListVendors(companyID string) ([]models.Vendor, error) {
	return s.vendorRepo.FindByCompanyID(companyID)
}

// GetVendor retrieves a vendor scoped to the caller's company
func (s *VendorService) GetVendor(vendorID, companyID string) (models.Vendor, error) {
	vendor, err := s.vendorRepo.FindByID(vendorID)
	if err != nil {
		return models.Vendor{}, err
	}
	if vendor.CompanyID != companyID {
		return models.Vendor{}, fmt.Errorf("vendor not found in your company")
	}
	return vendor, nil
}

// CreateVendor creates a vendor for a company
func (s *VendorService) CreateVendor(req dto.CreateVendorRequest, companyID string) (models.Vendor, error) {
	vendor := models.Vendor{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Rating:        req.Rating,
		CompanyID:     companyID,
	}
	return s.vendorRepo.Create(vendor)
}

// UpdateVendor applies a partial update to a vendor
func (s *VendorService) UpdateVendor(vendorID, companyID string, req dto.UpdateVendorRequest) (models.Vendor, error) {
	vendor, err := s.GetVendor(vendorID, companyID)
	if err != nil {
		return models.Vendor{}, err
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.ContactPerson != nil {
		vendor.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Rating != nil {
		vendor.Rating = req.Rating
	}

	if err := s.vendorRepo.Update(vendor); err != nil {
		return models.Vendor{}, err
	}
	return vendor, nil
}

// DeleteVendor removes a vendor. Purchases keep their vendor reference.
func (s *VendorService) DeleteVendor(vendorID, companyID string) error {
	if _, err := s.GetVendor(vendorID, companyID); err != nil {
		return err
	}
	return s.vendorRepo.Delete(vendorID)
}
