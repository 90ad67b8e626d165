package models

import "time"

// MonthlySummary caches one month's aggregated totals for a user. It is an
// explicit cache with its own upsert action; live reports never depend on it.
type MonthlySummary struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	UserID             uint      `gorm:"not null;uniqueIndex:idx_summary_user_month" json:"user_id"`
	Month              int       `gorm:"not null;uniqueIndex:idx_summary_user_month" json:"month"`
	Year               int       `gorm:"not null;uniqueIndex:idx_summary_user_month" json:"year"`
	TotalIncome        float64   `gorm:"default:0" json:"total_income"`
	TotalExpense       float64   `gorm:"default:0" json:"total_expense"`
	MonthlyBalance     float64   `gorm:"default:0" json:"monthly_balance"`
	TotalInvested      float64   `gorm:"default:0" json:"total_invested"`
	TotalContributions float64   `gorm:"default:0" json:"total_contributions"`
}
