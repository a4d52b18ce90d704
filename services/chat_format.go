package services

import (
	"fmt"
	"strings"

	"github.com/buildledger/dto"
	"github.com/buildledger/utils"
)

// Deterministic message templates. These are the answers users get when
// the generation service is unavailable, so they must stand on their own.

func formatPhaseSpending(d dto.PhaseSpendingResult) string {
	return fmt.Sprintf(
		"The %s phase has a budget of %s. So far %s has been spent across %d purchases, leaving %s remaining.",
		d.PhaseName,
		utils.FormatMoney(d.Budget),
		utils.FormatMoney(d.Spent),
		d.PurchaseCount,
		utils.FormatMoney(d.Remaining),
	)
}

func formatPurchases(records []dto.PurchaseRecord, scope string) string {
	var total float64
	for _, r := range records {
		total += r.TotalCost
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d %s totalling %s.", len(records), pluralPurchases(len(records)), utils.FormatMoney(total))
	if scope != "" {
		b.WriteString(" Scope: " + scope + ".")
	}

	shown := records
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, r := range shown {
		fmt.Fprintf(&b, "\n- %s: %.2f %s at %s each = %s (%s)",
			r.Item, r.Quantity, r.Unit,
			utils.FormatMoney(r.PricePerUnit),
			utils.FormatMoney(r.TotalCost),
			r.Date,
		)
	}
	if len(records) > len(shown) {
		fmt.Fprintf(&b, "\n...and %d more.", len(records)-len(shown))
	}
	return b.String()
}

func pluralPurchases(n int) string {
	if n == 1 {
		return "purchase"
	}
	return "purchases"
}

func formatComparison(d dto.ProjectComparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s:\n", d.Project1.Name, d.Project2.Name)
	for _, p := range []dto.ProjectSummary{d.Project1, d.Project2} {
		fmt.Fprintf(&b, "- %s: budget %s, spent %s (%.1f%% used), %s remaining, %d phases, %d purchases, status %s\n",
			p.Name,
			utils.FormatMoney(p.Budget),
			utils.FormatMoney(p.Spent),
			p.PercentUsed,
			utils.FormatMoney(p.Remaining),
			p.PhaseCount,
			p.PurchaseCount,
			p.Status,
		)
	}
	fmt.Fprintf(&b, "Budget difference: %s. Spend difference: %s. Efficiency difference: %.1f%%.",
		utils.FormatMoney(d.Comparison.BudgetDifference),
		utils.FormatMoney(d.Comparison.SpentDifference),
		d.Comparison.EfficiencyDifference,
	)
	return b.String()
}

func formatSummaries(summaries []dto.ProjectSummary) string {
	if len(summaries) == 1 {
		p := summaries[0]
		return fmt.Sprintf(
			"%s is %s with a budget of %s. Spent so far: %s (%.1f%%), leaving %s across %d phases and %d purchases.",
			p.Name, p.Status,
			utils.FormatMoney(p.Budget),
			utils.FormatMoney(p.Spent),
			p.PercentUsed,
			utils.FormatMoney(p.Remaining),
			p.PhaseCount,
			p.PurchaseCount,
		)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d projects:", len(summaries))
	for _, p := range summaries {
		fmt.Fprintf(&b, "\n- %s (%s): %s of %s used (%.1f%%)",
			p.Name, p.Status,
			utils.FormatMoney(p.Spent),
			utils.FormatMoney(p.Budget),
			p.PercentUsed,
		)
	}
	return b.String()
}

func formatVendorSpending(vendors []dto.VendorSpendingResult) string {
	var b strings.Builder
	b.WriteString("Vendor spending:")
	for _, v := range vendors {
		fmt.Fprintf(&b, "\n- %s: %s across %d purchases", v.Name, utils.FormatMoney(v.TotalSpent), v.PurchaseCount)
		if len(v.Items) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(v.Items, ", "))
		}
	}
	return b.String()
}
