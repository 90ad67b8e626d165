package reports

import (
	"fmt"
	"time"

	"finerp/models"
)

// MonthlyReport combines one month's realized totals with record counts and
// both category breakdowns. Income and expense match on payment dates, never
// on due dates.
type MonthlyReport struct {
	Month              int             `json:"month"`
	Year               int             `json:"year"`
	TotalIncome        float64         `json:"total_income"`
	TotalExpense       float64         `json:"total_expense"`
	Balance            float64         `json:"balance"`
	TotalInvested      float64         `json:"total_invested"`
	TotalContributions float64         `json:"total_contributions"`
	PayablesPaid       int             `json:"payables_paid"`
	PayablesOverdue    int             `json:"payables_overdue"`
	GoalsActive        int             `json:"goals_active"`
	GoalsCompleted     int             `json:"goals_completed_in_month"`
	IncomeByCategory   []CategoryEntry `json:"income_by_category"`
	ExpenseByCategory  []CategoryEntry `json:"expense_by_category"`
}

// ChartPoint is one month of the income/expense series.
type ChartPoint struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// MonthIncome sums paid receivables whose received date falls in the month.
func MonthIncome(rows []models.Receivable, month, year int) float64 {
	var total float64
	for _, r := range rows {
		if r.Status == models.StatusPaid && inMonth(r.ReceivedDate, month, year) {
			total += r.Amount
		}
	}
	return total
}

// MonthExpense sums paid payables whose paid date falls in the month.
func MonthExpense(rows []models.Payable, month, year int) float64 {
	var total float64
	for _, r := range rows {
		if r.Status == models.StatusPaid && inMonth(r.PaidDate, month, year) {
			total += r.Amount
		}
	}
	return total
}

// MonthInvested sums invested amounts for positions opened in the month.
func MonthInvested(rows []models.Investment, month, year int) float64 {
	var total float64
	for _, r := range rows {
		if dateInMonth(r.InvestmentDate, month, year) {
			total += r.InvestedAmount
		}
	}
	return total
}

// MonthContributions sums goal contributions dated in the month.
func MonthContributions(rows []models.GoalTransaction, month, year int) float64 {
	var total float64
	for _, r := range rows {
		if dateInMonth(r.TransactionDate, month, year) {
			total += r.Amount
		}
	}
	return total
}

// Monthly builds the full monthly report. Goals count as completed in the
// month when their last update falls inside it; there is no dedicated
// completion-date column, so this stays an approximation.
func Monthly(payables []models.Payable, receivables []models.Receivable,
	goals []models.Goal, contributions []models.GoalTransaction,
	investments []models.Investment, month, year int) MonthlyReport {

	rep := MonthlyReport{
		Month:              month,
		Year:               year,
		TotalIncome:        MonthIncome(receivables, month, year),
		TotalExpense:       MonthExpense(payables, month, year),
		TotalInvested:      MonthInvested(investments, month, year),
		TotalContributions: MonthContributions(contributions, month, year),
		IncomeByCategory:   BreakdownReceivables(receivables, month, year),
		ExpenseByCategory:  BreakdownPayables(payables, month, year),
	}
	rep.Balance = rep.TotalIncome - rep.TotalExpense

	for _, p := range payables {
		switch {
		case p.Status == models.StatusPaid && inMonth(p.PaidDate, month, year):
			rep.PayablesPaid++
		case p.Status == models.StatusOverdue && dateInMonth(p.DueDate, month, year):
			rep.PayablesOverdue++
		}
	}
	for _, g := range goals {
		switch g.Status {
		case models.GoalActive:
			rep.GoalsActive++
		case models.GoalCompleted:
			if dateInMonth(g.UpdatedAt, month, year) {
				rep.GoalsCompleted++
			}
		}
	}
	return rep
}

// ChartSeries walks back from now in 30-day steps, one point per step, and
// returns the series oldest first.
func ChartSeries(payables []models.Payable, receivables []models.Receivable,
	months int, now time.Time) []ChartPoint {

	if months < 1 {
		return nil
	}
	points := make([]ChartPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		ref := now.AddDate(0, 0, -30*i)
		m, y := int(ref.Month()), ref.Year()
		income := MonthIncome(receivables, m, y)
		expense := MonthExpense(payables, m, y)
		points = append(points, ChartPoint{
			Month:   fmt.Sprintf("%02d/%d", m, y),
			Income:  income,
			Expense: expense,
			Balance: income - expense,
		})
	}
	return points
}
