package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/models"
	"github.com/gymdesk/backend/internal/services/membership"
	"github.com/gymdesk/backend/internal/services/payment"
)

// PaymentHandler handles payment requests
type PaymentHandler struct {
	paymentService *payment.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentRequest represents the request body for recording a payment.
// Either client_id or walk_in must be provided.
type CreatePaymentRequest struct {
	ClientID    *uuid.UUID           `json:"client_id"`
	WalkIn      bool                 `json:"walk_in"`
	PlanID      uuid.UUID            `json:"plan_id" binding:"required"`
	Amount      *float64             `json:"amount" binding:"omitempty,gt=0"`
	Method      models.PaymentMethod `json:"payment_method" binding:"required"`
	PaymentDate string               `json:"payment_date"`
	Notes       string               `json:"notes"`
}

// CreatePayment records a payment and extends the member's access period
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ClientID == nil && !req.WalkIn {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_id required unless walk_in is set"})
		return
	}
	if req.ClientID != nil && req.WalkIn {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_id and walk_in are mutually exclusive"})
		return
	}

	switch req.Method {
	case models.PaymentMethodCash, models.PaymentMethodTransfer:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_method must be cash or transfer"})
		return
	}

	paymentDate := time.Now().UTC()
	if req.PaymentDate != "" {
		parsed, err := membership.ParseDate(req.PaymentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment_date, expected YYYY-MM-DD"})
			return
		}
		paymentDate = parsed
	}

	record, err := h.paymentService.RecordPayment(payment.RecordPaymentInput{
		ClientID:    req.ClientID,
		PlanID:      req.PlanID,
		Amount:      req.Amount,
		Method:      req.Method,
		PaymentDate: paymentDate,
		Notes:       req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, membership.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		case errors.Is(err, payment.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		case errors.Is(err, payment.ErrPlanInactive):
			c.JSON(http.StatusConflict, gin.H{"error": "Plan is not active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListPayments returns payments matching the query filters, newest first
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var filter payment.ListPaymentsFilter

	if clientID := c.Query("client_id"); clientID != "" {
		id, err := uuid.Parse(clientID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client_id"})
			return
		}
		filter.ClientID = &id
	}
	if planID := c.Query("plan_id"); planID != "" {
		id, err := uuid.Parse(planID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan_id"})
			return
		}
		filter.PlanID = &id
	}
	if method := c.Query("payment_method"); method != "" {
		filter.Method = models.PaymentMethod(method)
	}
	if startDate := c.Query("start_date"); startDate != "" {
		parsed, err := membership.ParseDate(startDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date, expected YYYY-MM-DD"})
			return
		}
		filter.StartDate = &parsed
	}
	if endDate := c.Query("end_date"); endDate != "" {
		parsed, err := membership.ParseDate(endDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date, expected YYYY-MM-DD"})
			return
		}
		filter.EndDate = &parsed
	}
	if minAmount := c.Query("min_amount"); minAmount != "" {
		value, err := strconv.ParseFloat(minAmount, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_amount"})
			return
		}
		filter.MinAmount = &value
	}
	if maxAmount := c.Query("max_amount"); maxAmount != "" {
		value, err := strconv.ParseFloat(maxAmount, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_amount"})
			return
		}
		filter.MaxAmount = &value
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	payments, total, err := h.paymentService.ListPayments(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"total":    total,
		"page":     filter.Page,
		"limit":    filter.Limit,
	})
}
