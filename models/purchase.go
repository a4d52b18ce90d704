package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Purchase is the append-mostly transactional record: an item bought at a
// quantity and price, attributed to a phase/category/project and optionally
// a vendor. All spend figures in the application are sums over this table.
type Purchase struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	Quantity     float64        `json:"quantity" gorm:"not null"`
	PricePerUnit float64        `json:"pricePerUnit" gorm:"not null"`
	TotalCost    float64        `json:"totalCost" gorm:"not null"`
	PurchaseDate time.Time      `json:"purchaseDate" gorm:"index"`
	InvoiceURL   string         `json:"invoiceUrl" gorm:"default:null"`
	ItemID       string         `json:"itemId" gorm:"type:uuid;not null;index"`
	CategoryID   string         `json:"categoryId" gorm:"type:uuid;not null;index"`
	PhaseID      string         `json:"phaseId" gorm:"type:uuid;not null;index"`
	ProjectID    string         `json:"projectId" gorm:"type:uuid;not null;index"`
	VendorID     *string        `json:"vendorId" gorm:"type:uuid;default:null;index"`
	CompanyID    string         `json:"companyId" gorm:"type:uuid;not null;index"`
	CreatedByID  string         `json:"createdById" gorm:"type:uuid;index"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Item    Item    `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Phase   Phase   `json:"phase,omitempty" gorm:"foreignKey:PhaseID"`
	Vendor  *Vendor `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
}

// BeforeCreate assigns an ID and derives the total cost when the caller
// did not supply one. Invariant: TotalCost == Quantity * PricePerUnit
// unless explicitly overridden.
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.TotalCost == 0 {
		p.TotalCost = p.Quantity * p.PricePerUnit
	}
	if p.PurchaseDate.IsZero() {
		p.PurchaseDate = time.Now()
	}
	return nil
}
