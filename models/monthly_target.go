package models

import "time"

// MonthlyTarget is a per-month budget goal across four metrics. Target amounts
// are set by the user; realized amounts and percentages are recomputed from
// the ledger on every tracking read and stored here only for convenience.
// At most one row may exist per (user, month, year).
type MonthlyTarget struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_target_user_month" json:"user_id"`
	Month     int       `gorm:"not null;uniqueIndex:idx_target_user_month" json:"month"`
	Year      int       `gorm:"not null;uniqueIndex:idx_target_user_month" json:"year"`

	TargetIncome     float64 `gorm:"default:0" json:"target_income"`
	TargetExpense    float64 `gorm:"default:0" json:"target_expense"`
	TargetInvestment float64 `gorm:"default:0" json:"target_investment"`
	TargetSavings    float64 `gorm:"default:0" json:"target_savings"`

	RealizedIncome     float64 `gorm:"default:0" json:"realized_income"`
	RealizedExpense    float64 `gorm:"default:0" json:"realized_expense"`
	RealizedInvestment float64 `gorm:"default:0" json:"realized_investment"`
	RealizedSavings    float64 `gorm:"default:0" json:"realized_savings"`

	PercentIncome     float64 `gorm:"default:0" json:"percent_income"`
	PercentExpense    float64 `gorm:"default:0" json:"percent_expense"`
	PercentInvestment float64 `gorm:"default:0" json:"percent_investment"`
	PercentSavings    float64 `gorm:"default:0" json:"percent_savings"`

	OverallStatus string `gorm:"size:16" json:"overall_status"`
}
