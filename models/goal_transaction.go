package models

import "time"

// GoalTransaction is a single contribution toward a goal. Creating one
// increments the parent goal's running total; deleting one decrements it.
type GoalTransaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	GoalID          uint      `gorm:"index;not null" json:"goal_id"`
	Amount          float64   `gorm:"not null" json:"amount"`
	Description     string    `gorm:"size:255" json:"description,omitempty"`
	TransactionDate time.Time `gorm:"type:date;not null" json:"transaction_date"`
}
