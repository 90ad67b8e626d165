package reports

import "finerp/models"

// CashFlowReport rolls one month's realized flows onto an opening balance.
// The opening balance folds (income - expense) over the months of the same
// year before the target month, so January always opens at zero; the fold
// restarts every year rather than carrying a running balance across years.
type CashFlowReport struct {
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	OpeningBalance   float64 `json:"opening_balance"`
	Inflow           float64 `json:"inflow"`
	Outflow          float64 `json:"outflow"`
	ClosingBalance   float64 `json:"closing_balance"`
	PercentVariation float64 `json:"percent_variation"`
}

// CashFlow computes the rollup for one month from paid rows.
func CashFlow(payables []models.Payable, receivables []models.Receivable, month, year int) CashFlowReport {
	var opening float64
	for m := 1; m < month; m++ {
		opening += MonthIncome(receivables, m, year) - MonthExpense(payables, m, year)
	}

	inflow := MonthIncome(receivables, month, year)
	outflow := MonthExpense(payables, month, year)

	variation := 0.0
	if opening > 0 {
		variation = round2((inflow - outflow) * 100 / opening)
	}

	return CashFlowReport{
		Month:            month,
		Year:             year,
		OpeningBalance:   opening,
		Inflow:           inflow,
		Outflow:          outflow,
		ClosingBalance:   opening + inflow - outflow,
		PercentVariation: variation,
	}
}
