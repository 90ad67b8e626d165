package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finerp/models"
)

func TestAlertsNegativeLifetimeBalance(t *testing.T) {
	payables := []models.Payable{
		paidPayable(700, models.CategoryHousing, d(2024, time.January, 10)),
	}
	receivables := []models.Receivable{
		paidReceivable(500, models.CategoryOther, d(2024, time.February, 5)),
	}

	rep := Alerts(payables, receivables, nil, nil, d(2024, time.June, 1))
	require.Equal(t, -200.0, rep.LifetimeBalance)
	require.True(t, rep.NegativeBalance)
	require.True(t, rep.Critical)

	joined := strings.Join(rep.Messages, "\n")
	require.Contains(t, joined, "CRITICO")
	require.Contains(t, joined, "saldo acumulado negativo")
}

func TestAlertsOverdueEscalation(t *testing.T) {
	now := d(2024, time.June, 15)
	overdue := func(day int) models.Payable {
		return models.Payable{
			Amount: 10, Category: models.CategoryOther,
			Status: models.StatusOverdue, DueDate: d(2024, time.June, day),
		}
	}

	// five overdue records stay non-critical
	var payables []models.Payable
	for day := 1; day <= 5; day++ {
		payables = append(payables, overdue(day))
	}
	rep := Alerts(payables, nil, nil, nil, now)
	require.Len(t, rep.OverduePayables, 5)
	require.False(t, rep.Critical)

	// the sixth crosses the threshold
	payables = append(payables, overdue(6))
	rep = Alerts(payables, nil, nil, nil, now)
	require.Len(t, rep.OverduePayables, 6)
	require.True(t, rep.Critical)
}

func TestAlertsFutureOverdueNotFlagged(t *testing.T) {
	payables := []models.Payable{{
		Amount: 10, Category: models.CategoryOther,
		Status: models.StatusOverdue, DueDate: d(2024, time.December, 1),
	}}
	rep := Alerts(payables, nil, nil, nil, d(2024, time.June, 1))
	require.Empty(t, rep.OverduePayables)
}

func TestAlertsLateGoalsAndLosingInvestments(t *testing.T) {
	now := d(2024, time.June, 1)
	goals := []models.Goal{
		{Title: "atrasada", Status: models.GoalActive, TargetDate: d(2024, time.May, 1)},
		{Title: "pausada", Status: models.GoalPaused, TargetDate: d(2024, time.May, 1)},
	}
	investments := []models.Investment{
		{Name: "cdb", Active: true, InvestedAmount: 1000, CurrentValue: 900},
		{Name: "resgatado", Active: false, InvestedAmount: 1000, CurrentValue: 500},
	}

	rep := Alerts(nil, nil, goals, investments, now)
	require.Len(t, rep.LateGoals, 1)
	require.Len(t, rep.LosingInvestments, 1)
	require.False(t, rep.Critical)
}
