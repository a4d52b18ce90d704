package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseSpending(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	queries := NewChatQueryService()

	f.addPurchase(t, db, f.cement, &f.acme.ID, 1000, 50, 10) // 50,000
	f.addPurchase(t, db, f.steel, &f.buildCo.ID, 15, 1000, 5) // 15,000

	result, err := queries.PhaseSpending(f.company.ID, "Grey")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Grey", result.PhaseName)
	assert.Equal(t, 100000.0, result.Budget)
	assert.Equal(t, 65000.0, result.Spent)
	assert.Equal(t, 35000.0, result.Remaining)
	assert.Equal(t, int64(2), result.PurchaseCount)

	// Reads are idempotent: asking again returns the same numbers.
	again, err := queries.PhaseSpending(f.company.ID, "Grey")
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestPhaseSpending_NameResolution(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	queries := NewChatQueryService()

	// Case-insensitive exact match.
	result, err := queries.PhaseSpending(f.company.ID, "grey")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Grey", result.PhaseName)

	// Substring match when no exact hit.
	result, err = queries.PhaseSpending(f.company.ID, "finish")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Finishing", result.PhaseName)

	// Unknown phase is nil, not an error.
	result, err = queries.PhaseSpending(f.company.ID, "landscaping")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestPhaseSpending_EmptyPhaseHasZeroSpend(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	queries := NewChatQueryService()

	result, err := queries.PhaseSpending(f.company.ID, "Finishing")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 0.0, result.Spent)
	assert.Equal(t, 80000.0, result.Remaining)
	assert.Equal(t, int64(0), result.PurchaseCount)
}

func TestItemPurchases_FiltersBySubstring(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	queries := NewChatQueryService()

	f.addPurchase(t, db, f.cement, &f.acme.ID, 100, 12, 3)
	f.addPurchase(t, db, f.steel, &f.buildCo.ID, 2, 800, 2)

	records, err := queries.ItemPurchases(f.company.ID, "cement", nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Portland Cement", records[0].Item)
	assert.Equal(t, 1200.0, records[0].TotalCost)
	assert.Equal(t, "Acme Supplies", records[0].Vendor)
	assert.Equal(t, "Downtown Tower", records[0].Project)

	// Empty item name means every purchase.
	records, err = queries.ItemPurchases(f.company.ID, "", nil, nil)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCurrentMonthPurchases_ExcludesOldRows(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	queries := NewChatQueryService()

	f.addPurchase(t, db, f.cement, &f.acme.ID, 10, 12, 0)
	f.addPurchase(t, db, f.cement, &f.acme.ID, 99, 12, 90) // well outside the month

	records, err := queries.CurrentMonthPurchases(f.company.ID, "cement")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 10.0, records[0].Quantity)
}

func TestCompareProjects(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	queries := NewChatQueryService()

	f.addPurchase(t, db, f.cement, &f.acme.ID, 1000, 50, 10) // tower: 50,000

	comparison, err := queries.CompareProjects(f.company.ID, "Downtown Tower", "Tech Plaza")
	require.NoError(t, err)
	require.NotNil(t, comparison)

	assert.Equal(t, "Downtown Tower", comparison.Project1.Name)
	assert.Equal(t, "Tech Plaza", comparison.Project2.Name)
	assert.Equal(t, 50000.0, comparison.Project1.Spent)
	assert.Equal(t, 0.0, comparison.Project2.Spent)
	assert.Equal(t, 200000.0, comparison.Comparison.BudgetDifference)
	assert.Equal(t, 50000.0, comparison.Comparison.SpentDifference)
	assert.Equal(t, 10.0, comparison.Project1.PercentUsed)
}

func TestCompareProjects_MissingProjectIsNil(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	queries := NewChatQueryService()

	comparison, err := queries.CompareProjects(f.company.ID, "Downtown Tower", "Nonexistent")
	require.NoError(t, err)
	assert.Nil(t, comparison)
}

func TestProjectSummary(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	queries := NewChatQueryService()

	f.addPurchase(t, db, f.cement, &f.acme.ID, 1000, 50, 10)

	summary, err := queries.ProjectSummary(f.company.ID, "downtown")
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, "Downtown Tower", summary.Name)
	assert.Equal(t, 500000.0, summary.Budget)
	assert.Equal(t, 50000.0, summary.Spent)
	assert.Equal(t, 450000.0, summary.Remaining)
	assert.Equal(t, 10.0, summary.PercentUsed)
	assert.Equal(t, int64(2), summary.PhaseCount)
	assert.Equal(t, int64(1), summary.PurchaseCount)
}

func TestAllProjectSummaries(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	queries := NewChatQueryService()

	summaries, err := queries.AllProjectSummaries(f.company.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	names := []string{summaries[0].Name, summaries[1].Name}
	assert.ElementsMatch(t, []string{"Downtown Tower", "Tech Plaza"}, names)
}

func TestVendorSpending_Rollup(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	queries := NewChatQueryService()

	f.addPurchase(t, db, f.cement, &f.acme.ID, 100, 12, 3)  // acme: 1,200
	f.addPurchase(t, db, f.steel, &f.acme.ID, 5, 800, 2)    // acme: 4,000
	f.addPurchase(t, db, f.steel, &f.buildCo.ID, 10, 800, 1) // buildco: 8,000
	f.addPurchase(t, db, f.cement, nil, 50, 12, 1)           // no vendor: 600

	vendors, err := queries.VendorSpending(f.company.ID, "", "")
	require.NoError(t, err)
	require.Len(t, vendors, 3)

	// Sorted by total spend descending.
	assert.Equal(t, "BuildCo", vendors[0].Name)
	assert.Equal(t, 8000.0, vendors[0].TotalSpent)
	assert.Equal(t, "Acme Supplies", vendors[1].Name)
	assert.Equal(t, 5200.0, vendors[1].TotalSpent)
	assert.Equal(t, int64(2), vendors[1].PurchaseCount)
	assert.Equal(t, []string{"Portland Cement", "Steel Rebar"}, vendors[1].Items)
	assert.Equal(t, "Unknown", vendors[2].Name)
	assert.Equal(t, 600.0, vendors[2].TotalSpent)
}

func TestVendorSpending_NameFilter(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	queries := NewChatQueryService()

	f.addPurchase(t, db, f.cement, &f.acme.ID, 100, 12, 3)
	f.addPurchase(t, db, f.steel, &f.buildCo.ID, 10, 800, 1)

	vendors, err := queries.VendorSpending(f.company.ID, "acme", "")
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Acme Supplies", vendors[0].Name)

	// No matching vendor is an empty list, not an error.
	vendors, err = queries.VendorSpending(f.company.ID, "nobody", "")
	require.NoError(t, err)
	assert.Empty(t, vendors)
}

func TestVendorSpending_IgnoresOtherCompanies(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	queries := NewChatQueryService()

	f.addPurchase(t, db, f.cement, &f.acme.ID, 100, 12, 3)

	vendors, err := queries.VendorSpending("another-company", "", "")
	require.NoError(t, err)
	assert.Empty(t, vendors)
}

func TestPercentUsed(t *testing.T) {
	assert.Equal(t, 65.0, PercentUsed(65000, 100000))
	assert.Equal(t, 33.3, PercentUsed(1, 3))
	assert.Equal(t, 0.0, PercentUsed(0, 100000))
	// Zero budget never divides.
	assert.Equal(t, 0.0, PercentUsed(500, 0))
}
