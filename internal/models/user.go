package models

import (
	"time"
)

// User represents a gym operator account
type User struct {
	Base
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName     string     `gorm:"type:varchar(200);not null" json:"full_name"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	IsAdmin      bool       `gorm:"default:false" json:"is_admin"`
	LastLoginAt  *time.Time `json:"last_login_at"`
}
