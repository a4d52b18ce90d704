package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/buildledger/dto"
	"github.com/buildledger/models"
	"github.com/buildledger/repositories"
	"github.com/buildledger/utils"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// allSummariesLimit caps the project list returned by AllProjectSummaries.
const allSummariesLimit = 10

// ChatQueryService exposes the read-only queries behind the chat intents.
// Every function is company-scoped and recomputes spend from raw purchase
// rows on each call; name resolution is case-insensitive with exact match
// preferred over substring match. An unresolved name returns nil, not an
// error.
type ChatQueryService struct {
	projectRepo  *repositories.ProjectRepository
	phaseRepo    *repositories.PhaseRepository
	purchaseRepo *repositories.PurchaseRepository
	vendorRepo   *repositories.VendorRepository
}

// NewChatQueryService creates a new chat query service instance
func NewChatQueryService() *ChatQueryService {
	return &ChatQueryService{
		projectRepo:  repositories.NewProjectRepository(),
		phaseRepo:    repositories.NewPhaseRepository(),
		purchaseRepo: repositories.NewPurchaseRepository(),
		vendorRepo:   repositories.NewVendorRepository(),
	}
}

// PhaseSpending resolves a phase by name and sums the purchases against it.
// Returns nil when no phase resolves.
func (s *ChatQueryService) PhaseSpending(companyID, phaseName string) (*dto.PhaseSpendingResult, error) {
	phase, err := s.phaseRepo.FindByNameExact(companyID, phaseName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		phase, err = s.phaseRepo.FindByNamePartial(companyID, phaseName)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	spent, err := s.purchaseRepo.SumByPhaseID(phase.ID)
	if err != nil {
		return nil, err
	}
	count, err := s.purchaseRepo.CountByPhaseID(phase.ID)
	if err != nil {
		return nil, err
	}

	return &dto.PhaseSpendingResult{
		PhaseName:     phase.Name,
		Budget:        phase.Budget,
		Spent:         spent,
		Remaining:     phase.Budget - spent,
		PurchaseCount: count,
	}, nil
}

// ItemPurchases lists purchases in an optional date window, filtered by a
// case-insensitive substring match on the resolved item name. The item
// filter runs client-side: the name lives on the joined item row, and the
// substring semantics are kept identical to the product's behavior.
func (s *ChatQueryService) ItemPurchases(companyID, itemName string, start, end *time.Time) ([]dto.PurchaseRecord, error) {
	purchases, err := s.purchaseRepo.FindInWindow(companyID, start, end)
	if err != nil {
		return nil, err
	}

	records := make([]dto.PurchaseRecord, 0, len(purchases))
	for _, p := range purchases {
		if itemName != "" && !utils.ContainsFold(p.Item.Name, itemName) {
			continue
		}
		vendorName := ""
		if p.Vendor != nil {
			vendorName = p.Vendor.Name
		}
		records = append(records, dto.PurchaseRecord{
			Item:         p.Item.Name,
			Quantity:     p.Quantity,
			Unit:         p.Item.Unit,
			PricePerUnit: p.PricePerUnit,
			TotalCost:    p.TotalCost,
			Vendor:       vendorName,
			Project:      p.Project.Name,
			Date:         p.PurchaseDate.Format("2006-01-02"),
		})
	}
	return records, nil
}

// CurrentMonthPurchases lists purchases within the current calendar month.
func (s *ChatQueryService) CurrentMonthPurchases(companyID, itemName string) ([]dto.PurchaseRecord, error) {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return s.ItemPurchases(companyID, itemName, &first, &last)
}

// CompareProjects resolves two projects by name and compares their budget
// usage. Returns nil when either name fails to resolve.
func (s *ChatQueryService) CompareProjects(companyID, name1, name2 string) (*dto.ProjectComparison, error) {
	p1, err := s.resolveProject(companyID, name1)
	if err != nil {
		return nil, err
	}
	p2, err := s.resolveProject(companyID, name2)
	if err != nil {
		return nil, err
	}
	if p1 == nil || p2 == nil {
		return nil, nil
	}

	s1, err := s.summarize(*p1)
	if err != nil {
		return nil, err
	}
	s2, err := s.summarize(*p2)
	if err != nil {
		return nil, err
	}

	return &dto.ProjectComparison{
		Project1: s1,
		Project2: s2,
		Comparison: dto.ProjectComparisonGap{
			BudgetDifference:     s1.Budget - s2.Budget,
			SpentDifference:      s1.Spent - s2.Spent,
			EfficiencyDifference: s1.PercentUsed - s2.PercentUsed,
		},
	}, nil
}

// ProjectSummary resolves one project by name and rolls it up. Returns nil
// when the name does not resolve.
func (s *ChatQueryService) ProjectSummary(companyID, projectName string) (*dto.ProjectSummary, error) {
	project, err := s.resolveProject(companyID, projectName)
	if err != nil || project == nil {
		return nil, err
	}
	summary, err := s.summarize(*project)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// AllProjectSummaries rolls up the company's newest projects, capped at
// ten. Per-project sums are independent reads, so they run concurrently.
func (s *ChatQueryService) AllProjectSummaries(companyID string) ([]dto.ProjectSummary, error) {
	projects, err := s.projectRepo.FindRecent(companyID, allSummariesLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ProjectSummary, len(projects))
	var g errgroup.Group
	for i, project := range projects {
		i, project := i, project
		g.Go(func() error {
			summary, err := s.summarize(project)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// VendorSpending aggregates purchases by vendor, optionally scoped to a
// project and filtered by a case-insensitive substring on the vendor name,
// sorted by total spend descending. An empty list is a valid outcome.
func (s *ChatQueryService) VendorSpending(companyID, vendorName, projectID string) ([]dto.VendorSpendingResult, error) {
	purchases, err := s.purchaseRepo.FindForVendorRollup(companyID, projectID)
	if err != nil {
		return nil, err
	}

	type rollup struct {
		name  string
		spent float64
		count int64
		items map[string]struct{}
	}
	groups := make(map[string]*rollup)

	for _, p := range purchases {
		name := "Unknown"
		if p.Vendor != nil {
			name = p.Vendor.Name
		}
		if vendorName != "" && !utils.ContainsFold(name, vendorName) {
			continue
		}
		key := strings.ToLower(name)
		g, ok := groups[key]
		if !ok {
			g = &rollup{name: name, items: make(map[string]struct{})}
			groups[key] = g
		}
		g.spent += p.TotalCost
		g.count++
		if p.Item.Name != "" {
			g.items[p.Item.Name] = struct{}{}
		}
	}

	results := make([]dto.VendorSpendingResult, 0, len(groups))
	for _, g := range groups {
		items := make([]string, 0, len(g.items))
		for item := range g.items {
			items = append(items, item)
		}
		sort.Strings(items)
		results = append(results, dto.VendorSpendingResult{
			Name:          g.name,
			TotalSpent:    g.spent,
			PurchaseCount: g.count,
			Items:         items,
		})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].TotalSpent > results[j].TotalSpent
	})
	return results, nil
}

// resolveProject looks a project up by case-insensitive exact name, then
// substring. A nil project means not found.
func (s *ChatQueryService) resolveProject(companyID, name string) (*models.Project, error) {
	project, err := s.projectRepo.FindByNameExact(companyID, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		project, err = s.projectRepo.FindByNamePartial(companyID, name)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// summarize computes the live rollup for one project.
func (s *ChatQueryService) summarize(project models.Project) (dto.ProjectSummary, error) {
	spent, err := s.purchaseRepo.SumByProjectID(project.ID)
	if err != nil {
		return dto.ProjectSummary{}, err
	}
	purchaseCount, err := s.purchaseRepo.CountByProjectID(project.ID)
	if err != nil {
		return dto.ProjectSummary{}, err
	}
	phaseCount, err := s.phaseRepo.CountByProjectID(project.ID)
	if err != nil {
		return dto.ProjectSummary{}, err
	}

	return dto.ProjectSummary{
		Name:          project.Name,
		Client:        project.Client,
		Status:        string(project.Status),
		Budget:        project.Budget,
		Spent:         spent,
		Remaining:     project.Budget - spent,
		PercentUsed:   PercentUsed(spent, project.Budget),
		PhaseCount:    phaseCount,
		PurchaseCount: purchaseCount,
	}, nil
}
