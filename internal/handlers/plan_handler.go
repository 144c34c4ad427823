package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gymdesk/backend/internal/models"
)

// PlanHandler handles membership plan requests
type PlanHandler struct {
	db *gorm.DB
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(db *gorm.DB) *PlanHandler {
	return &PlanHandler{db: db}
}

// CreatePlanRequest represents the request body for creating a plan
type CreatePlanRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	DurationDays int     `json:"duration_days" binding:"required,gt=0"`
	Price        float64 `json:"price" binding:"required,gt=0"`
}

// UpdatePlanRequest represents the request body for updating a plan
type UpdatePlanRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	DurationDays *int     `json:"duration_days" binding:"omitempty,gt=0"`
	Price        *float64 `json:"price" binding:"omitempty,gt=0"`
}

// ListPlans returns plans, active ones only unless include_inactive is set
func (h *PlanHandler) ListPlans(c *gin.Context) {
	query := h.db.Model(&models.Plan{})
	if c.Query("include_inactive") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var plans []models.Plan
	if err := query.Order("duration_days ASC").Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// CreatePlan creates a new membership plan
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := models.Plan{
		Name:         req.Name,
		Description:  req.Description,
		DurationDays: req.DurationDays,
		Price:        req.Price,
		IsActive:     true,
	}
	if err := h.db.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlan returns one plan by ID
func (h *PlanHandler) GetPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	var plan models.Plan
	if err := h.db.First(&plan, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// UpdatePlan updates a plan's fields. Price and duration changes only affect
// future payments; recorded periods are immutable.
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	var plan models.Plan
	if err := h.db.First(&plan, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DurationDays != nil {
		updates["duration_days"] = *req.DurationDays
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}

	if len(updates) > 0 {
		if err := h.db.Model(&plan).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
			return
		}
	}

	c.JSON(http.StatusOK, plan)
}

// DeactivatePlan retires a plan so it can no longer be sold. Plans with
// members still on them cannot be deactivated.
func (h *PlanHandler) DeactivatePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	var plan models.Plan
	if err := h.db.First(&plan, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	var holders int64
	if err := h.db.Model(&models.Client{}).
		Where("current_plan_id = ?", plan.ID).
		Count(&holders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check plan usage"})
		return
	}
	if holders > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Plan has clients assigned and cannot be deactivated"})
		return
	}

	if err := h.db.Model(&plan).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deactivated"})
}
