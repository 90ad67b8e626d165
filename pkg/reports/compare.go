package reports

import "finerp/models"

// ComparisonReport diffs one month's report against the immediately prior
// month's.
type ComparisonReport struct {
	Current      MonthlyReport `json:"current"`
	Previous     MonthlyReport `json:"previous"`
	IncomeDelta  float64       `json:"income_delta"`
	ExpenseDelta float64       `json:"expense_delta"`
	BalanceDelta float64       `json:"balance_delta"`
	Trend        string        `json:"trend"`
}

// PreviousMonth steps one month back, crossing into December of the prior
// year from January.
func PreviousMonth(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}

// Compare builds the month-over-month comparison. The trend follows the sign
// of the balance delta.
func Compare(payables []models.Payable, receivables []models.Receivable,
	goals []models.Goal, contributions []models.GoalTransaction,
	investments []models.Investment, month, year int) ComparisonReport {

	current := Monthly(payables, receivables, goals, contributions, investments, month, year)
	pm, py := PreviousMonth(month, year)
	previous := Monthly(payables, receivables, goals, contributions, investments, pm, py)

	balanceDelta := current.Balance - previous.Balance
	trend := TrendStable
	if balanceDelta > 0 {
		trend = TrendGrowth
	} else if balanceDelta < 0 {
		trend = TrendDecline
	}

	return ComparisonReport{
		Current:      current,
		Previous:     previous,
		IncomeDelta:  current.TotalIncome - previous.TotalIncome,
		ExpenseDelta: current.TotalExpense - previous.TotalExpense,
		BalanceDelta: balanceDelta,
		Trend:        trend,
	}
}
