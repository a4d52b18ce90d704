package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups items within a phase (e.g. "Electrical Infrastructure").
type Category struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string         `json:"name" gorm:"not null"`
	PhaseID   string         `json:"phaseId" gorm:"type:uuid;not null;index"`
	CompanyID string         `json:"companyId" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Phase Phase  `json:"phase,omitempty" gorm:"foreignKey:PhaseID"`
	Items []Item `json:"items,omitempty" gorm:"foreignKey:CategoryID"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
