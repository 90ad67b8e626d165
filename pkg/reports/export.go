package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"finerp/models"
)

// ExportDocument bundles every monthly view into a single structure, suitable
// for JSON as-is or for the flat CSV rendering below. The target section is
// nil when the user never set a target for the month.
type ExportDocument struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Month       int                   `json:"month"`
	Year        int                   `json:"year"`
	Monthly     MonthlyReport         `json:"monthly"`
	CashFlow    CashFlowReport        `json:"cash_flow"`
	Comparison  ComparisonReport      `json:"comparison"`
	Alerts      AlertsReport          `json:"alerts"`
	Target      *models.MonthlyTarget `json:"target,omitempty"`
}

// money renders an amount with exactly two decimals for the tabular export.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// WriteCSV renders the document as a flat delimited table with a fixed
// section order: header, summary, cash-flow, income-by-category,
// expense-by-category.
func WriteCSV(w io.Writer, doc ExportDocument) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{"section", "field", "value"},
		{"header", "month", fmt.Sprintf("%02d/%d", doc.Month, doc.Year)},
		{"header", "generated_at", doc.GeneratedAt.Format(time.RFC3339)},

		{"summary", "total_income", money(doc.Monthly.TotalIncome)},
		{"summary", "total_expense", money(doc.Monthly.TotalExpense)},
		{"summary", "balance", money(doc.Monthly.Balance)},
		{"summary", "total_invested", money(doc.Monthly.TotalInvested)},
		{"summary", "total_contributions", money(doc.Monthly.TotalContributions)},
		{"summary", "payables_paid", fmt.Sprintf("%d", doc.Monthly.PayablesPaid)},
		{"summary", "payables_overdue", fmt.Sprintf("%d", doc.Monthly.PayablesOverdue)},
		{"summary", "trend", doc.Comparison.Trend},

		{"cash_flow", "opening_balance", money(doc.CashFlow.OpeningBalance)},
		{"cash_flow", "inflow", money(doc.CashFlow.Inflow)},
		{"cash_flow", "outflow", money(doc.CashFlow.Outflow)},
		{"cash_flow", "closing_balance", money(doc.CashFlow.ClosingBalance)},
		{"cash_flow", "percent_variation", fmt.Sprintf("%.2f", doc.CashFlow.PercentVariation)},
	}

	for _, e := range doc.Monthly.IncomeByCategory {
		records = append(records, []string{
			"income_by_category", string(e.Category), money(e.Total),
		})
	}
	for _, e := range doc.Monthly.ExpenseByCategory {
		records = append(records, []string{
			"expense_by_category", string(e.Category), money(e.Total),
		})
	}

	if err := cw.WriteAll(records); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
