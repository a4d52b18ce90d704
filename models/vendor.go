package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor represents a company-scoped supplier record.
type Vendor struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name          string         `json:"name" gorm:"not null"`
	ContactPerson string         `json:"contactPerson" gorm:"default:null"`
	Phone         string         `json:"phone" gorm:"default:null"`
	Email         string         `json:"email" gorm:"default:null"`
	Rating        *float64       `json:"rating" gorm:"default:null"` // 0-5, optional
	CompanyID     string         `json:"companyId" gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
