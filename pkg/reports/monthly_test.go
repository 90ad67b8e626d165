package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finerp/models"
)

func TestMonthlyMatchesPaymentDatesNotDueDates(t *testing.T) {
	// due in February, paid in March: counts for March only
	paid := d(2024, time.March, 3)
	payables := []models.Payable{{
		Amount: 250, Category: models.CategoryHousing,
		Status: models.StatusPaid,
		DueDate: d(2024, time.February, 10), PaidDate: &paid,
	}}
	receivables := []models.Receivable{
		paidReceivable(1000, models.CategoryOther, d(2024, time.March, 1)),
	}

	feb := Monthly(payables, receivables, nil, nil, nil, 2, 2024)
	require.Equal(t, 0.0, feb.TotalExpense)

	mar := Monthly(payables, receivables, nil, nil, nil, 3, 2024)
	require.Equal(t, 250.0, mar.TotalExpense)
	require.Equal(t, 1000.0, mar.TotalIncome)
	require.Equal(t, 750.0, mar.Balance)
	require.Equal(t, 1, mar.PayablesPaid)
}

func TestMonthlyGoalCounts(t *testing.T) {
	goals := []models.Goal{
		{Title: "ativa", Status: models.GoalActive, UpdatedAt: d(2024, time.January, 1)},
		{Title: "concluida agora", Status: models.GoalCompleted, UpdatedAt: d(2024, time.March, 15)},
		{Title: "concluida antes", Status: models.GoalCompleted, UpdatedAt: d(2023, time.July, 1)},
	}
	rep := Monthly(nil, nil, goals, nil, nil, 3, 2024)
	require.Equal(t, 1, rep.GoalsActive)
	require.Equal(t, 1, rep.GoalsCompleted)
}

func TestMonthlyInvestedAndContributed(t *testing.T) {
	contributions := []models.GoalTransaction{
		{Amount: 100, TransactionDate: d(2024, time.March, 1)},
		{Amount: 60, TransactionDate: d(2024, time.March, 25)},
	}
	investments := []models.Investment{
		{InvestedAmount: 2000, CurrentValue: 2010, InvestmentDate: d(2024, time.March, 12), Active: true},
		{InvestedAmount: 700, CurrentValue: 690, InvestmentDate: d(2024, time.April, 1), Active: true},
	}
	rep := Monthly(nil, nil, nil, contributions, investments, 3, 2024)
	require.Equal(t, 160.0, rep.TotalContributions)
	require.Equal(t, 2000.0, rep.TotalInvested)
}

func TestChartSeriesOldestFirst(t *testing.T) {
	now := d(2024, time.March, 15)
	receivables := []models.Receivable{
		paidReceivable(100, models.CategoryOther, d(2024, time.January, 10)),
		paidReceivable(300, models.CategoryOther, d(2024, time.March, 10)),
	}
	points := ChartSeries(nil, receivables, 3, now)
	require.Len(t, points, 3)
	require.Equal(t, "01/2024", points[0].Month)
	require.Equal(t, 100.0, points[0].Income)
	require.Equal(t, "03/2024", points[2].Month)
	require.Equal(t, 300.0, points[2].Income)
}
