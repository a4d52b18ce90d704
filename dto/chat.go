package dto

// ChatRequest is the payload for the chat endpoint
type ChatRequest struct {
	Query string `json:"query" binding:"required"`
}

// ChatEnvelope is the shape every chat interaction terminates in,
// regardless of which intent ran or what failed along the way.
type ChatEnvelope struct {
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Intent    string `json:"intent"`
	Timestamp string `json:"timestamp"` // ISO 8601
}

// PhaseSpendingResult summarizes spend against one phase's budget
type PhaseSpendingResult struct {
	PhaseName     string  `json:"phaseName"`
	Budget        float64 `json:"budget"`
	Spent         float64 `json:"spent"`
	Remaining     float64 `json:"remaining"`
	PurchaseCount int64   `json:"purchaseCount"`
}

// PurchaseRecord is a flattened purchase row with its references resolved
// to names
type PurchaseRecord struct {
	Item         string  `json:"item"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"pricePerUnit"`
	TotalCost    float64 `json:"totalCost"`
	Vendor       string  `json:"vendor"`
	Project      string  `json:"project"`
	Date         string  `json:"date"`
}

// ProjectSummary is the per-project rollup used by summaries and
// comparisons
type ProjectSummary struct {
	Name          string  `json:"name"`
	Client        string  `json:"client,omitempty"`
	Status        string  `json:"status"`
	Budget        float64 `json:"budget"`
	Spent         float64 `json:"spent"`
	Remaining     float64 `json:"remaining"`
	PercentUsed   float64 `json:"percentUsed"`
	PhaseCount    int64   `json:"phaseCount"`
	PurchaseCount int64   `json:"purchaseCount"`
}

// ProjectComparison pairs two project rollups with their deltas
type ProjectComparison struct {
	Project1   ProjectSummary       `json:"project1"`
	Project2   ProjectSummary       `json:"project2"`
	Comparison ProjectComparisonGap `json:"comparison"`
}

// ProjectComparisonGap holds project1-minus-project2 differences
type ProjectComparisonGap struct {
	BudgetDifference     float64 `json:"budgetDifference"`
	SpentDifference      float64 `json:"spentDifference"`
	EfficiencyDifference float64 `json:"efficiencyDifference"`
}

// VendorSpendingResult aggregates a company's purchases for one vendor
type VendorSpendingResult struct {
	Name          string   `json:"name"`
	TotalSpent    float64  `json:"totalSpent"`
	PurchaseCount int64    `json:"purchaseCount"`
	Items         []string `json:"items"`
}
