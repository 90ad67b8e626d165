package models

import (
	"time"
)

// User model. Every financial record in the system hangs off a user id.
type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `gorm:"index" json:"-"`
	Username       string     `gorm:"size:255;not null;unique" json:"username"`
	Email          string     `gorm:"size:255;not null;unique" json:"email"`
	FullName       string     `gorm:"size:255" json:"full_name"`
	HashedPassword []byte     `gorm:"not null" json:"-"`
	Active         bool       `gorm:"default:true;not null" json:"active"`
	Phone          string     `gorm:"size:64" json:"phone,omitempty"`
	Address        string     `gorm:"size:512" json:"address,omitempty"`
	Bio            string     `gorm:"size:512" json:"bio,omitempty"`
	RoleID         *uint      `gorm:"index" json:"role_id,omitempty"`
	Role           Role       `gorm:"foreignKey:RoleID;references:ID" json:"-"`
}
