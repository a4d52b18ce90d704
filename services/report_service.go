package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/buildledger/dto"
	"github.com/buildledger/repositories"
)

// ReportService exports purchase data for offline use.
type ReportService struct {
	purchaseRepo *repositories.PurchaseRepository
}

// NewReportService creates a new report service instance
func NewReportService() *ReportService {
	return &ReportService{
		purchaseRepo: repositories.NewPurchaseRepository(),
	}
}

// WritePurchasesCSV streams a company's purchases as CSV, honoring the
// same filters as the purchase list endpoint (minus pagination: exports
// are always complete).
func (s *ReportService) WritePurchasesCSV(w io.Writer, filter dto.PurchaseFilter) error {
	const exportPageSize = 1000

	cw := csv.NewWriter(w)
	header := []string{
		"date", "item", "quantity", "unit", "price_per_unit",
		"total_cost", "vendor", "project_id", "phase_id", "invoice_url",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	page := 1
	for {
		purchases, _, err := s.purchaseRepo.FindWithPagination(
			filter.CompanyID,
			page, exportPageSize,
			filter.ProjectID, filter.PhaseID, filter.VendorID,
			filter.From, filter.To,
		)
		if err != nil {
			return err
		}
		if len(purchases) == 0 {
			break
		}

		for _, p := range purchases {
			vendorName := ""
			if p.Vendor != nil {
				vendorName = p.Vendor.Name
			}
			record := []string{
				p.PurchaseDate.Format("2006-01-02"),
				p.Item.Name,
				fmt.Sprintf("%g", p.Quantity),
				p.Item.Unit,
				fmt.Sprintf("%.2f", p.PricePerUnit),
				fmt.Sprintf("%.2f", p.TotalCost),
				vendorName,
				p.ProjectID,
				p.PhaseID,
				p.InvoiceURL,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}

		if len(purchases) < exportPageSize {
			break
		}
		page++
	}

	cw.Flush()
	return cw.Error()
}
