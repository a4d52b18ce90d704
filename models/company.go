package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is the tenancy root. Every other record carries a CompanyID and
// every query is scoped by it.
type Company struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string         `json:"name" gorm:"not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Users    []User    `json:"users,omitempty" gorm:"foreignKey:CompanyID"`
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:CompanyID"`
}

// BeforeCreate assigns a UUID when none is provided. IDs are generated
// application-side so the same models work on postgres and the in-memory
// sqlite used by tests.
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
