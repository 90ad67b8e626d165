package reports

import (
	"time"

	"finerp/models"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func dp(y int, m time.Month, day int) *time.Time {
	t := d(y, m, day)
	return &t
}

func paidPayable(amount float64, cat models.Category, paid time.Time) models.Payable {
	return models.Payable{
		Description: "despesa",
		Amount:      amount,
		Category:    cat,
		Status:      models.StatusPaid,
		DueDate:     paid,
		PaidDate:    &paid,
	}
}

func paidReceivable(amount float64, cat models.Category, received time.Time) models.Receivable {
	return models.Receivable{
		Description:  "receita",
		Amount:       amount,
		Category:     cat,
		Status:       models.StatusPaid,
		DueDate:      received,
		ReceivedDate: &received,
	}
}
