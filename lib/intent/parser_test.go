package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PhaseSpending(t *testing.T) {
	tests := []struct {
		name  string
		query string
		phase string
	}{
		{"spent on named phase", "What's the total spent on Grey phase?", "Grey"},
		{"cost wording", "What did the foundation cost?", "foundation"},
		{"phase keyword form", "budget for phase electrical", "electrical"},
		{"known phase literal", "Grey total so far", "Grey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.query)
			require.Equal(t, KindPhaseSpending, got.Kind)
			assert.Equal(t, tt.phase, got.Phase)
			assert.Equal(t, tt.query, got.Raw)
		})
	}
}

func TestParse_ItemPurchases(t *testing.T) {
	got := Parse("Show me all cement purchases this month")
	require.Equal(t, KindItemPurchases, got.Kind)
	assert.Equal(t, "cement", got.Item)
	assert.True(t, got.ThisMonth)

	got = Parse("List steel purchases")
	require.Equal(t, KindItemPurchases, got.Kind)
	assert.Equal(t, "steel", got.Item)
	assert.False(t, got.ThisMonth)

	// Unknown item falls back to the word before "purchase".
	got = Parse("show me all widget purchases")
	require.Equal(t, KindItemPurchases, got.Kind)
	assert.Equal(t, "widget", got.Item)

	// No item at all means every purchase.
	got = Parse("show purchases")
	require.Equal(t, KindItemPurchases, got.Kind)
	assert.Equal(t, "", got.Item)
}

func TestParse_CompareProjects(t *testing.T) {
	got := Parse("Compare Tech Plaza to Downtown Tower")
	require.Equal(t, KindCompareProjects, got.Kind)
	assert.Equal(t, []string{"Tech Plaza", "Downtown Tower"}, got.Projects)

	got = Parse("compare project Alpha with project Beta?")
	require.Equal(t, KindCompareProjects, got.Kind)
	assert.Equal(t, []string{"Alpha", "Beta"}, got.Projects)

	// No pair extracted: dispatcher asks a clarifying question.
	got = Parse("compare my spending")
	require.Equal(t, KindCompareProjects, got.Kind)
	assert.Len(t, got.Projects, 0)
}

func TestParse_VendorSpending(t *testing.T) {
	got := Parse("Which vendors did we use the most?")
	require.Equal(t, KindVendorSpending, got.Kind)
	assert.Equal(t, "", got.Vendor)

	got = Parse("How much did vendor Acme Supplies cost us?")
	require.Equal(t, KindVendorSpending, got.Kind)
	assert.Equal(t, "Acme Supplies", got.Vendor)

	got = Parse("show supplier breakdown")
	assert.Equal(t, KindVendorSpending, got.Kind)
}

func TestParse_ProjectSummary(t *testing.T) {
	got := Parse("Give me a summary of all projects")
	require.Equal(t, KindProjectSummary, got.Kind)
	assert.True(t, got.AllProjects)

	got = Parse("Summary of project Downtown Tower")
	require.Equal(t, KindProjectSummary, got.Kind)
	assert.False(t, got.AllProjects)
	assert.Equal(t, "Downtown Tower", got.Project)

	got = Parse("how are my projects doing?")
	require.Equal(t, KindProjectSummary, got.Kind)
	assert.True(t, got.AllProjects)
}

func TestParse_GeneralFallback(t *testing.T) {
	for _, query := range []string{
		"hello there",
		"what can you do?",
		"weather tomorrow",
		"",
	} {
		got := Parse(query)
		assert.Equal(t, KindGeneral, got.Kind, "query %q", query)
		assert.Equal(t, query, got.Raw)
	}
}

func TestParse_PriorityOrder(t *testing.T) {
	// Carries both spend and vendor keywords; the phase rule wins because
	// it is evaluated first.
	got := Parse("total spent on plumbing, by vendor")
	assert.Equal(t, KindPhaseSpending, got.Kind)

	// "show ... purchases" beats the vendor rule for the same reason.
	got = Parse("show me purchases from vendors")
	assert.Equal(t, KindItemPurchases, got.Kind)
}
