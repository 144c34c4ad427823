package models

// Plan represents a membership plan offered by the gym
type Plan struct {
	Base
	Name         string  `gorm:"type:varchar(100);not null" json:"name"`
	Description  string  `gorm:"type:text" json:"description"`
	DurationDays int     `gorm:"not null" json:"duration_days"`
	Price        float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`
}
