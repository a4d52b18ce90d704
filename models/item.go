package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item represents a purchasable material or equipment type with a unit rate.
type Item struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name            string         `json:"name" gorm:"not null"`
	Unit            string         `json:"unit" gorm:"not null"` // bag, ton, m3, piece...
	Rate            float64        `json:"rate" gorm:"default:0"`
	CategoryID      string         `json:"categoryId" gorm:"type:uuid;not null;index"`
	CompanyID       string         `json:"companyId" gorm:"type:uuid;not null;index"`
	DefaultVendorID *string        `json:"defaultVendorId" gorm:"type:uuid;default:null"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Category      Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	DefaultVendor *Vendor  `json:"defaultVendor,omitempty" gorm:"foreignKey:DefaultVendorID"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
