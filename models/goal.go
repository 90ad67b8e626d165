package models

import "time"

// Goal is a savings target accumulated through discrete GoalTransaction rows.
// CurrentAmount must always equal the sum of the goal's live transactions;
// handlers maintain it with atomic increments inside the same DB transaction
// that writes the contribution row.
type Goal struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	Description   string     `gorm:"size:512" json:"description,omitempty"`
	TargetAmount  float64    `gorm:"not null" json:"target_amount"`
	CurrentAmount float64    `gorm:"not null;default:0" json:"current_amount"`
	StartDate     time.Time  `gorm:"type:date;not null" json:"start_date"`
	TargetDate    time.Time  `gorm:"type:date;not null;index" json:"target_date"`
	Status        GoalStatus `gorm:"size:16;not null;default:ativa;index" json:"status"`
	Color         string     `gorm:"size:16;default:#3B82F6" json:"color"`
}

// GoalStatusAfter returns the status a goal should carry once its running
// total changed. Reaching the target always completes the goal; falling back
// below it only reverts a completed goal, so paused/cancelled goals never
// reactivate on their own.
func GoalStatusAfter(current, target float64, status GoalStatus) GoalStatus {
	if current >= target {
		return GoalCompleted
	}
	if status == GoalCompleted {
		return GoalActive
	}
	return status
}
