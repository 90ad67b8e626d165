package models

import "time"

// Payable is an obligation to pay by a due date. A payable created through the
// installment endpoint carries the installment fields and shares a GroupID
// with its siblings; GroupID is assigned at group-creation time, before any
// row is persisted, so the grouping never depends on a sibling's primary key.
type Payable struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	UserID       uint         `gorm:"index;not null" json:"user_id"`
	Description  string       `gorm:"size:255;not null" json:"description"`
	Amount       float64      `gorm:"not null" json:"amount"`
	DueDate      time.Time    `gorm:"type:date;not null;index" json:"due_date"`
	PaidDate     *time.Time   `gorm:"type:date" json:"paid_date,omitempty"`
	Category     Category     `gorm:"size:32;not null;index" json:"category"`
	Status       RecordStatus `gorm:"size:16;not null;default:pendente;index" json:"status"`
	Observations string       `gorm:"size:512" json:"observations,omitempty"`

	IsInstallment     bool    `gorm:"default:false;not null" json:"is_installment"`
	InstallmentIndex  int     `json:"installment_index,omitempty"`
	InstallmentCount  int     `json:"installment_count,omitempty"`
	InstallmentAmount float64 `json:"installment_amount,omitempty"`
	GroupID           string  `gorm:"size:36;index" json:"group_id,omitempty"`
}
