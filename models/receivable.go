package models

import "time"

// Receivable is an amount owed to the user, trackable through the same
// lifecycle as a payable.
type Receivable struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	UserID       uint         `gorm:"index;not null" json:"user_id"`
	Description  string       `gorm:"size:255;not null" json:"description"`
	Amount       float64      `gorm:"not null" json:"amount"`
	DueDate      time.Time    `gorm:"type:date;not null;index" json:"due_date"`
	ReceivedDate *time.Time   `gorm:"type:date" json:"received_date,omitempty"`
	Category     Category     `gorm:"size:32;not null;index" json:"category"`
	Status       RecordStatus `gorm:"size:16;not null;default:pendente;index" json:"status"`
	Observations string       `gorm:"size:512" json:"observations,omitempty"`
}
