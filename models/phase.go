package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Phase represents a top-level construction stage within a project
// (e.g. "Grey" structural work vs. "Finishing"). The schema does not
// restrict the name set.
type Phase struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"default:null"`
	Budget      float64        `json:"budget" gorm:"default:0"`
	ProjectID   string         `json:"projectId" gorm:"type:uuid;not null;index"`
	CompanyID   string         `json:"companyId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project    Project    `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Categories []Category `json:"categories,omitempty" gorm:"foreignKey:PhaseID"`
}

func (p *Phase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
