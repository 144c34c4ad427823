package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gymdesk/backend/internal/models"
	"github.com/gymdesk/backend/internal/services/membership"
	"github.com/gymdesk/backend/internal/utils"
)

// ErrClientNotFound is returned when a payment references an unknown client
var ErrClientNotFound = errors.New("client not found")

// ErrPlanInactive is returned when a payment references a deactivated plan
var ErrPlanInactive = errors.New("plan is not active")

// RecordPaymentInput carries the fields needed to record a payment.
// A nil ClientID records a walk-in payment.
type RecordPaymentInput struct {
	ClientID    *uuid.UUID
	PlanID      uuid.UUID
	Amount      *float64 // overrides the plan price when set
	Method      models.PaymentMethod
	PaymentDate time.Time
	Notes       string
}

// ListPaymentsFilter narrows the payment listing
type ListPaymentsFilter struct {
	ClientID  *uuid.UUID
	PlanID    *uuid.UUID
	Method    models.PaymentMethod
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *float64
	MaxAmount *float64
	Page      int
	Limit     int
}

// PaymentService records payments and extends memberships
type PaymentService struct {
	db *gorm.DB
}

// NewPaymentService creates a new payment service
func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// RecordPayment creates a payment and, for tracked clients, extends the
// membership in the same transaction. The paid period stacks onto an unexpired
// membership and restarts from the payment date after a lapse.
func (s *PaymentService) RecordPayment(input RecordPaymentInput) (*models.Payment, error) {
	var plan models.Plan
	if err := s.db.First(&plan, "id = ?", input.PlanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, membership.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}
	if !plan.IsActive {
		return nil, ErrPlanInactive
	}

	var client *models.Client
	if input.ClientID != nil {
		client = &models.Client{}
		if err := s.db.First(client, "id = ?", *input.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClientNotFound
			}
			return nil, fmt.Errorf("failed to fetch client: %w", err)
		}
	}

	var priorExpiration *time.Time
	if client != nil {
		priorExpiration = client.ExpirationDate
	}
	period := membership.ComputePeriod(input.PaymentDate, plan.DurationDays, priorExpiration)

	amount := plan.Price
	if input.Amount != nil {
		amount = *input.Amount
	}

	payment := &models.Payment{
		ClientID:    input.ClientID,
		PlanID:      plan.ID,
		Amount:      amount,
		Method:      input.Method,
		PaymentDate: membership.DateOf(input.PaymentDate),
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		Reference:   utils.GenerateReceiptNumber(),
		Notes:       input.Notes,
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(payment).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	if client != nil {
		updates := map[string]interface{}{
			"expiration_date":   period.End,
			"last_payment_date": payment.PaymentDate,
			"current_plan_id":   plan.ID,
			"status":            models.ClientStatusActive,
		}
		if err := tx.Model(client).Updates(updates).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to update client membership: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit payment: %w", err)
	}

	payment.Plan = plan
	payment.Client = client
	return payment, nil
}

// ListPayments returns payments matching the filter, newest first, with the
// total count for pagination
func (s *PaymentService) ListPayments(filter ListPaymentsFilter) ([]models.Payment, int64, error) {
	query := s.db.Model(&models.Payment{})

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.PlanID != nil {
		query = query.Where("plan_id = ?", *filter.PlanID)
	}
	if filter.Method != "" {
		query = query.Where("method = ?", filter.Method)
	}
	if filter.StartDate != nil {
		query = query.Where("payment_date >= ?", membership.DateOf(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("payment_date <= ?", membership.DateOf(*filter.EndDate))
	}
	if filter.MinAmount != nil {
		query = query.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("amount <= ?", *filter.MaxAmount)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var payments []models.Payment
	if err := query.
		Preload("Client").
		Preload("Plan").
		Order("payment_date DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&payments).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch payments: %w", err)
	}

	return payments, total, nil
}
