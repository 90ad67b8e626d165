package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finerp/models"
)

func TestOverallStatusBoundaries(t *testing.T) {
	cases := []struct {
		percents []float64
		want     string
	}{
		{[]float64{120, 90, 70, 40}, StatusGood}, // avg exactly 80
		{[]float64{100, 100, 100, 100}, StatusExcellent},
		{[]float64{60, 60, 60, 60}, StatusRegular}, // exactly 60 stays regular
		{[]float64{59, 59, 59, 59}, StatusPoor},
		{[]float64{79.9, 80, 80, 80}, StatusRegular},
	}
	for _, tc := range cases {
		if got := OverallStatus(tc.percents...); got != tc.want {
			t.Fatalf("percents %v: expected %q got %q", tc.percents, tc.want, got)
		}
	}
}

func TestPercentOfZeroTarget(t *testing.T) {
	require.Equal(t, 0.0, PercentOf(500, 0))
	require.Equal(t, 0.0, PercentOf(500, -10))
	require.Equal(t, 50.0, PercentOf(500, 1000))
}

func TestTrackTarget(t *testing.T) {
	target := models.MonthlyTarget{
		Month: 3, Year: 2024,
		TargetIncome:     1000,
		TargetExpense:    1000,
		TargetInvestment: 1000,
		TargetSavings:    1000,
	}
	tracked := TrackTarget(target, Realized{Income: 1200, Expense: 900, Investment: 700, Savings: 400})

	require.Equal(t, 120.0, tracked.PercentIncome)
	require.Equal(t, 90.0, tracked.PercentExpense)
	require.Equal(t, 70.0, tracked.PercentInvestment)
	require.Equal(t, 40.0, tracked.PercentSavings)
	require.Equal(t, StatusGood, tracked.OverallStatus)
	require.Equal(t, 1200.0, tracked.RealizedIncome)
}

func TestRealizedTotalsMatchOwnDateFields(t *testing.T) {
	month, year := 3, 2024
	payables := []models.Payable{
		paidPayable(300, models.CategoryFood, d(2024, time.March, 10)),
		paidPayable(999, models.CategoryFood, d(2024, time.April, 10)),
	}
	receivables := []models.Receivable{
		paidReceivable(1000, models.CategoryOther, d(2024, time.March, 5)),
	}
	contributions := []models.GoalTransaction{
		{Amount: 150, TransactionDate: d(2024, time.March, 2)},
		{Amount: 50, TransactionDate: d(2024, time.February, 2)},
	}
	investments := []models.Investment{
		{InvestedAmount: 500, CurrentValue: 510, InvestmentDate: d(2024, time.March, 20), Active: true},
	}

	r := RealizedTotals(payables, receivables, contributions, investments, month, year)
	require.Equal(t, 1000.0, r.Income)
	require.Equal(t, 300.0, r.Expense)
	require.Equal(t, 500.0, r.Investment)
	require.Equal(t, 150.0, r.Savings)
}
