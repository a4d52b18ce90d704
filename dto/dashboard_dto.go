package dto

// MonthlySpendPoint is one month of aggregated purchase cost
type MonthlySpendPoint struct {
	Month string  `json:"month"` // YYYY-MM
	Spent float64 `json:"spent"`
}

// DashboardResponse is the company-wide analytics rollup
type DashboardResponse struct {
	Totals struct {
		Projects    int64   `json:"projects"`
		Vendors     int64   `json:"vendors"`
		Purchases   int64   `json:"purchases"`
		TotalBudget float64 `json:"totalBudget"`
		TotalSpent  float64 `json:"totalSpent"`
	} `json:"totals"`
	ProjectsByStatus map[string]int         `json:"projectsByStatus"`
	Projects         []ProjectSummary       `json:"projects"`
	TopVendors       []VendorSpendingResult `json:"topVendors"`
	MonthlySpend     []MonthlySpendPoint    `json:"monthlySpend"`
}
