package dto

import "time"

// CreatePhaseRequest is the payload for creating a phase
type CreatePhaseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget" binding:"gte=0"`
	ProjectID   string  `json:"projectId" binding:"required"`
}

// UpdatePhaseRequest is the payload for partially updating a phase
type UpdatePhaseRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Budget      *float64 `json:"budget"`
}

// CreateCategoryRequest is the payload for creating a category
type CreateCategoryRequest struct {
	Name    string `json:"name" binding:"required"`
	PhaseID string `json:"phaseId" binding:"required"`
}

// UpdateCategoryRequest is the payload for renaming a category
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

// CreateItemRequest is the payload for creating an item
type CreateItemRequest struct {
	Name            string  `json:"name" binding:"required"`
	Unit            string  `json:"unit" binding:"required"`
	Rate            float64 `json:"rate" binding:"gte=0"`
	CategoryID      string  `json:"categoryId" binding:"required"`
	DefaultVendorID *string `json:"defaultVendorId"`
}

// UpdateItemRequest is the payload for partially updating an item
type UpdateItemRequest struct {
	Name            *string  `json:"name"`
	Unit            *string  `json:"unit"`
	Rate            *float64 `json:"rate"`
	DefaultVendorID *string  `json:"defaultVendorId"`
}

// CreateVendorRequest is the payload for creating a vendor
type CreateVendorRequest struct {
	Name          string   `json:"name" binding:"required"`
	ContactPerson string   `json:"contactPerson"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Rating        *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

// UpdateVendorRequest is the payload for partially updating a vendor
type UpdateVendorRequest struct {
	Name          *string  `json:"name"`
	ContactPerson *string  `json:"contactPerson"`
	Phone         *string  `json:"phone"`
	Email         *string  `json:"email"`
	Rating        *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

// CreatePurchaseRequest is the payload for recording a purchase.
// TotalCost is optional: when omitted it is derived as quantity times
// price per unit.
type CreatePurchaseRequest struct {
	ItemID       string     `json:"itemId" binding:"required"`
	CategoryID   string     `json:"categoryId" binding:"required"`
	PhaseID      string     `json:"phaseId" binding:"required"`
	ProjectID    string     `json:"projectId" binding:"required"`
	VendorID     *string    `json:"vendorId"`
	Quantity     float64    `json:"quantity" binding:"required,gt=0"`
	PricePerUnit float64    `json:"pricePerUnit" binding:"required,gt=0"`
	TotalCost    float64    `json:"totalCost" binding:"gte=0"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	InvoiceURL   string     `json:"invoiceUrl"`
}

// UpdatePurchaseRequest is the payload for partially updating a purchase
type UpdatePurchaseRequest struct {
	VendorID     *string    `json:"vendorId"`
	Quantity     *float64   `json:"quantity"`
	PricePerUnit *float64   `json:"pricePerUnit"`
	TotalCost    *float64   `json:"totalCost"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	InvoiceURL   *string    `json:"invoiceUrl"`
}

// PurchaseFilter captures purchase list query parameters
type PurchaseFilter struct {
	CompanyID string
	ProjectID string
	PhaseID   string
	VendorID  string
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
}
