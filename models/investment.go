package models

import "time"

// Investment is a valued position: what was paid in versus what it is worth
// now.
type Investment struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	UserID         uint           `gorm:"index;not null" json:"user_id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Type           InvestmentType `gorm:"size:32;not null;index" json:"type"`
	InvestedAmount float64        `gorm:"not null" json:"invested_amount"`
	CurrentValue   float64        `gorm:"not null" json:"current_value"`
	InvestmentDate time.Time      `gorm:"type:date;not null;index" json:"investment_date"`
	RedemptionDate *time.Time     `gorm:"type:date" json:"redemption_date,omitempty"`
	AnnualYield    *float64       `json:"annual_yield,omitempty"`
	Observations   string         `gorm:"size:512" json:"observations,omitempty"`
	Active         bool           `gorm:"default:true;not null;index" json:"active"`
}
