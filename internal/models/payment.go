package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod represents how a payment was collected
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// Payment represents a membership payment. A nil ClientID marks a walk-in
// payment that is not tied to a tracked member and never mutates client state.
type Payment struct {
	Base
	ClientID    *uuid.UUID    `gorm:"type:uuid;index" json:"client_id"`
	Client      *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	PlanID      uuid.UUID     `gorm:"type:uuid;index;not null" json:"plan_id"`
	Plan        Plan          `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	Amount      float64       `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method      PaymentMethod `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentDate time.Time     `gorm:"type:date;not null;index" json:"payment_date"`
	PeriodStart time.Time     `gorm:"type:date;not null" json:"period_start"`
	PeriodEnd   time.Time     `gorm:"type:date;not null" json:"period_end"`
	Reference   string        `gorm:"type:varchar(100);uniqueIndex" json:"reference"`
	Notes       string        `gorm:"type:text" json:"notes"`
}
