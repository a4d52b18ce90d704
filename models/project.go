package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusStartingSoon ProjectStatus = "starting_soon"
	ProjectStatusOngoing      ProjectStatus = "ongoing"
	ProjectStatusPaused       ProjectStatus = "paused"
	ProjectStatusCompleted    ProjectStatus = "completed"
)

// ValidProjectStatus reports whether s is one of the known status values.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusStartingSoon, ProjectStatusOngoing, ProjectStatusPaused, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project represents a construction project tracked against a budget.
// Spend is never stored on the project: it is always the live sum of the
// purchases referencing it.
type Project struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string         `json:"name" gorm:"not null"`
	Client      string         `json:"client" gorm:"default:null"`
	Budget      float64        `json:"budget" gorm:"not null;default:0"`
	Status      ProjectStatus  `json:"status" gorm:"type:varchar(20);default:'starting_soon'"`
	StartDate   *time.Time     `json:"startDate" gorm:"default:null"`
	EndDate     *time.Time     `json:"endDate" gorm:"default:null"`
	CompanyID   string         `json:"companyId" gorm:"type:uuid;not null;index"`
	CreatedByID string         `json:"createdById" gorm:"type:uuid;index"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations. Deletes do not cascade: removing a project leaves its
	// phases and purchases in place.
	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Phases  []Phase `json:"phases,omitempty" gorm:"foreignKey:ProjectID"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
