package dto

import (
	"time"

	"github.com/buildledger/models"
)

// CreateProjectRequest is the payload for creating a project
type CreateProjectRequest struct {
	Name      string     `json:"name" binding:"required"`
	Client    string     `json:"client"`
	Budget    float64    `json:"budget" binding:"gte=0"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// UpdateProjectRequest is the payload for partially updating a project
type UpdateProjectRequest struct {
	Name      *string    `json:"name"`
	Client    *string    `json:"client"`
	Budget    *float64   `json:"budget"`
	Status    *string    `json:"status"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// ProjectFilter captures list query parameters
type ProjectFilter struct {
	CompanyID string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// ProjectListResponse is a paginated list of projects
type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// ProjectPhaseStatsItem is a per-phase line in project statistics
type ProjectPhaseStatsItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Budget        float64 `json:"budget"`
	Spent         float64 `json:"spent"`
	Remaining     float64 `json:"remaining"`
	PurchaseCount int64   `json:"purchaseCount"`
}

// ProjectStatsResponse is the dashboard payload for a single project
type ProjectStatsResponse struct {
	Project struct {
		ID        string  `json:"id"`
		Name      string  `json:"name"`
		Client    string  `json:"client"`
		Status    string  `json:"status"`
		Budget    float64 `json:"budget"`
		CreatedAt string  `json:"createdAt"`
	} `json:"project"`
	Spending struct {
		Spent         float64 `json:"spent"`
		Remaining     float64 `json:"remaining"`
		PercentUsed   float64 `json:"percentUsed"`
		PurchaseCount int64   `json:"purchaseCount"`
	} `json:"spending"`
	Phases []ProjectPhaseStatsItem `json:"phases"`
}
