package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finerp/models"
)

func TestPreviousMonthJanuary(t *testing.T) {
	m, y := PreviousMonth(1, 2024)
	require.Equal(t, 12, m)
	require.Equal(t, 2023, y)

	m, y = PreviousMonth(7, 2024)
	require.Equal(t, 6, m)
	require.Equal(t, 2024, y)
}

func TestCompareTrend(t *testing.T) {
	receivables := []models.Receivable{
		paidReceivable(500, models.CategoryOther, d(2024, time.February, 5)),
		paidReceivable(800, models.CategoryOther, d(2024, time.March, 5)),
	}

	rep := Compare(nil, receivables, nil, nil, nil, 3, 2024)
	require.Equal(t, TrendGrowth, rep.Trend)
	require.Equal(t, 300.0, rep.IncomeDelta)
	require.Equal(t, 300.0, rep.BalanceDelta)

	rep = Compare(nil, receivables, nil, nil, nil, 4, 2024)
	require.Equal(t, TrendDecline, rep.Trend)

	rep = Compare(nil, nil, nil, nil, nil, 4, 2024)
	require.Equal(t, TrendStable, rep.Trend)
}

func TestCompareJanuaryLooksAtPriorDecember(t *testing.T) {
	receivables := []models.Receivable{
		paidReceivable(900, models.CategoryOther, d(2023, time.December, 20)),
		paidReceivable(400, models.CategoryOther, d(2024, time.January, 10)),
	}
	rep := Compare(nil, receivables, nil, nil, nil, 1, 2024)
	require.Equal(t, 900.0, rep.Previous.TotalIncome)
	require.Equal(t, 400.0, rep.Current.TotalIncome)
	require.Equal(t, TrendDecline, rep.Trend)
}
