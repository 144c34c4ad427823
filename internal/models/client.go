package models

import (
	"time"

	"github.com/google/uuid"
)

// ClientStatus represents the stored membership status of a client
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusFrozen   ClientStatus = "frozen" // business term for an expired membership
	ClientStatusInactive ClientStatus = "inactive"
)

// Client represents a gym member
type Client struct {
	Base
	FullName              string       `gorm:"type:varchar(200);not null" json:"full_name"`
	Phone                 string       `gorm:"type:varchar(20);not null" json:"phone"`
	Email                 *string      `gorm:"type:varchar(255)" json:"email"`
	Status                ClientStatus `gorm:"type:varchar(20);not null;default:'inactive'" json:"status"`
	CurrentPlanID         *uuid.UUID   `gorm:"type:uuid;index" json:"current_plan_id"`
	Plan                  *Plan        `gorm:"foreignKey:CurrentPlanID" json:"plan,omitempty"`
	ExpirationDate        *time.Time   `gorm:"type:date" json:"expiration_date"`
	LastPaymentDate       *time.Time   `gorm:"type:date" json:"last_payment_date"`
	RegistrationDate      time.Time    `gorm:"type:date;not null" json:"registration_date"`
	PhotoURL              *string      `gorm:"type:text" json:"photo_url"`
	BirthDate             *time.Time   `gorm:"type:date" json:"birth_date"`
	BloodType             string       `gorm:"type:varchar(5)" json:"blood_type"`
	Gender                string       `gorm:"type:varchar(20)" json:"gender"`
	MedicalConditions     string       `gorm:"type:text" json:"medical_conditions"`
	EmergencyContactName  string       `gorm:"type:varchar(200)" json:"emergency_contact_name"`
	EmergencyContactPhone string       `gorm:"type:varchar(20)" json:"emergency_contact_phone"`
}
