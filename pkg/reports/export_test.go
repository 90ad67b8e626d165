package reports

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"finerp/models"
)

func TestWriteCSVSectionOrderAndMoneyFormat(t *testing.T) {
	payables := []models.Payable{
		paidPayable(400, models.CategoryTransport, d(2024, time.March, 10)),
		paidPayable(600, models.CategoryFood, d(2024, time.March, 5)),
	}
	receivables := []models.Receivable{
		paidReceivable(1500.5, models.CategoryOther, d(2024, time.March, 1)),
	}

	doc := ExportDocument{
		GeneratedAt: d(2024, time.April, 1),
		Month:       3,
		Year:        2024,
		Monthly:     Monthly(payables, receivables, nil, nil, nil, 3, 2024),
		CashFlow:    CashFlow(payables, receivables, 3, 2024),
		Comparison:  Compare(payables, receivables, nil, nil, nil, 3, 2024),
		Alerts:      Alerts(payables, receivables, nil, nil, d(2024, time.April, 1)),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, doc))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// section column must appear in the fixed order
	var order []string
	seen := map[string]bool{}
	for _, row := range rows[1:] {
		if !seen[row[0]] {
			seen[row[0]] = true
			order = append(order, row[0])
		}
	}
	require.Equal(t, []string{"header", "summary", "cash_flow", "income_by_category", "expense_by_category"}, order)

	// money cells carry exactly two decimals
	for _, row := range rows[1:] {
		if row[0] == "summary" && row[1] == "total_income" {
			require.Equal(t, "1500.50", row[2])
		}
		if row[0] == "expense_by_category" && row[1] == string(models.CategoryFood) {
			require.Equal(t, "600.00", row[2])
		}
	}
}
