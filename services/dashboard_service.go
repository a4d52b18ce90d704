package services

import (
	"time"

	"github.com/buildledger/dto"
	"github.com/buildledger/repositories"
	"golang.org/x/sync/errgroup"
)

// monthlyWindow is how many months the spend series covers.
const monthlyWindow = 6

// DashboardService computes the company-wide analytics rollup. All
// figures are recomputed from raw rows on every call.
type DashboardService struct {
	projectRepo  *repositories.ProjectRepository
	vendorRepo   *repositories.VendorRepository
	purchaseRepo *repositories.PurchaseRepository
	queries      *ChatQueryService
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService() *DashboardService {
	return &DashboardService{
		projectRepo:  repositories.NewProjectRepository(),
		vendorRepo:   repositories.NewVendorRepository(),
		purchaseRepo: repositories.NewPurchaseRepository(),
		queries:      NewChatQueryService(),
	}
}

// GetDashboard builds the analytics payload for a company
func (s *DashboardService) GetDashboard(companyID string) (dto.DashboardResponse, error) {
	var response dto.DashboardResponse

	projects, err := s.projectRepo.FindByCompanyID(companyID)
	if err != nil {
		return response, err
	}

	vendorCount, err := s.vendorRepo.CountByCompanyID(companyID)
	if err != nil {
		return response, err
	}
	purchaseCount, err := s.purchaseRepo.CountByCompanyID(companyID)
	if err != nil {
		return response, err
	}
	totalSpent, err := s.purchaseRepo.SumByCompanyID(companyID)
	if err != nil {
		return response, err
	}

	response.Totals.Projects = int64(len(projects))
	response.Totals.Vendors = vendorCount
	response.Totals.Purchases = purchaseCount
	response.Totals.TotalSpent = totalSpent

	response.ProjectsByStatus = make(map[string]int)
	for _, p := range projects {
		response.Totals.TotalBudget += p.Budget
		response.ProjectsByStatus[string(p.Status)]++
	}

	// Per-project rollups are independent reads; run them concurrently.
	response.Projects = make([]dto.ProjectSummary, len(projects))
	var g errgroup.Group
	for i, project := range projects {
		i, project := i, project
		g.Go(func() error {
			summary, err := s.queries.summarize(project)
			if err != nil {
				return err
			}
			response.Projects[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return response, err
	}

	vendors, err := s.queries.VendorSpending(companyID, "", "")
	if err != nil {
		return response, err
	}
	if len(vendors) > 5 {
		vendors = vendors[:5]
	}
	response.TopVendors = vendors

	series, err := s.monthlySpend(companyID)
	if err != nil {
		return response, err
	}
	response.MonthlySpend = series

	return response, nil
}

// monthlySpend buckets the last six months of purchases by calendar
// month. Bucketing happens in Go so the same code runs on postgres and
// the sqlite test database.
func (s *DashboardService) monthlySpend(companyID string) ([]dto.MonthlySpendPoint, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(monthlyWindow - 1), 0)

	purchases, err := s.purchaseRepo.FindSince(companyID, start)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]float64)
	for _, p := range purchases {
		buckets[p.PurchaseDate.Format("2006-01")] += p.TotalCost
	}

	series := make([]dto.MonthlySpendPoint, 0, monthlyWindow)
	for i := 0; i < monthlyWindow; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")
		series = append(series, dto.MonthlySpendPoint{
			Month: month,
			Spent: buckets[month],
		})
	}
	return series, nil
}
