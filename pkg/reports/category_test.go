package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finerp/models"
)

func TestBreakdownPercentagesAndOrder(t *testing.T) {
	rows := []models.Payable{
		paidPayable(400, models.CategoryTransport, d(2024, time.March, 10)),
		paidPayable(350, models.CategoryFood, d(2024, time.March, 5)),
		paidPayable(250, models.CategoryFood, d(2024, time.March, 20)),
	}

	entries := BreakdownPayables(rows, 3, 2024)
	require.Len(t, entries, 2)

	require.Equal(t, models.CategoryFood, entries[0].Category)
	require.Equal(t, 600.0, entries[0].Total)
	require.Equal(t, 60.0, entries[0].Percent)
	require.Equal(t, 2, entries[0].Count)

	require.Equal(t, models.CategoryTransport, entries[1].Category)
	require.Equal(t, 400.0, entries[1].Total)
	require.Equal(t, 40.0, entries[1].Percent)
	require.Equal(t, 1, entries[1].Count)
}

func TestBreakdownSkipsUnpaidAndOtherMonths(t *testing.T) {
	rows := []models.Payable{
		paidPayable(100, models.CategoryFood, d(2024, time.February, 28)),
		{Amount: 500, Category: models.CategoryFood, Status: models.StatusPending, DueDate: d(2024, time.March, 1)},
	}
	require.Empty(t, BreakdownPayables(rows, 3, 2024))
}

func TestBreakdownZeroTotalYieldsZeroPercent(t *testing.T) {
	rows := []models.Payable{
		paidPayable(0, models.CategoryOther, d(2024, time.March, 1)),
	}
	entries := BreakdownPayables(rows, 3, 2024)
	require.Len(t, entries, 1)
	require.Equal(t, 0.0, entries[0].Percent)
}

func TestBreakdownReceivablesMatchesReceivedDate(t *testing.T) {
	rows := []models.Receivable{
		paidReceivable(1000, models.CategoryOther, d(2024, time.July, 1)),
		{Amount: 999, Category: models.CategoryOther, Status: models.StatusPaid,
			DueDate: d(2024, time.July, 1), ReceivedDate: dp(2024, time.August, 1)},
	}
	entries := BreakdownReceivables(rows, 7, 2024)
	require.Len(t, entries, 1)
	require.Equal(t, 1000.0, entries[0].Total)
	require.Equal(t, 100.0, entries[0].Percent)
}
