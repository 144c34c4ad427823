package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/gymdesk/backend/internal/config"
	"github.com/gymdesk/backend/internal/models"
	"github.com/gymdesk/backend/internal/services/membership"
)

// welcomeMailer greets newly registered members
type welcomeMailer interface {
	SendWelcomeEmail(toEmail, fullName string) error
}

// ClientHandler handles gym member requests
type ClientHandler struct {
	db      *gorm.DB
	uploads config.UploadConfig
	mailer  welcomeMailer
}

// NewClientHandler creates a new client handler
func NewClientHandler(db *gorm.DB, uploads config.UploadConfig, mailer welcomeMailer) *ClientHandler {
	return &ClientHandler{db: db, uploads: uploads, mailer: mailer}
}

// sendWelcome greets members who left an email address. Failures are logged,
// never surfaced; registration has already succeeded.
func (h *ClientHandler) sendWelcome(client *models.Client) {
	if h.mailer == nil || client.Email == nil || *client.Email == "" {
		return
	}
	if err := h.mailer.SendWelcomeEmail(*client.Email, client.FullName); err != nil {
		log.Printf("Welcome email to %s failed: %v", *client.Email, err)
	}
}

// CreateClientRequest represents the request body for registering a member
type CreateClientRequest struct {
	FullName              string  `json:"full_name" binding:"required"`
	Phone                 string  `json:"phone" binding:"required"`
	Email                 *string `json:"email" binding:"omitempty,email"`
	BirthDate             string  `json:"birth_date"`
	BloodType             string  `json:"blood_type"`
	Gender                string  `json:"gender"`
	MedicalConditions     string  `json:"medical_conditions"`
	EmergencyContactName  string  `json:"emergency_contact_name"`
	EmergencyContactPhone string  `json:"emergency_contact_phone"`
}

// UpdateClientRequest represents the request body for updating a member.
// Membership fields are managed by payments, not by this endpoint.
type UpdateClientRequest struct {
	FullName              *string              `json:"full_name"`
	Phone                 *string              `json:"phone"`
	Email                 *string              `json:"email" binding:"omitempty,email"`
	Status                *models.ClientStatus `json:"status"`
	BirthDate             *string              `json:"birth_date"`
	BloodType             *string              `json:"blood_type"`
	Gender                *string              `json:"gender"`
	MedicalConditions     *string              `json:"medical_conditions"`
	EmergencyContactName  *string              `json:"emergency_contact_name"`
	EmergencyContactPhone *string              `json:"emergency_contact_phone"`
}

type clientResponse struct {
	models.Client
	DisplayStatus membership.DisplayStatus `json:"display_status"`
}

func toClientResponse(client models.Client, today time.Time) clientResponse {
	return clientResponse{
		Client:        client,
		DisplayStatus: membership.Classify(&client, today),
	}
}

// ListClients returns members matching the query filters, with pagination
func (h *ClientHandler) ListClients(c *gin.Context) {
	query := h.db.Model(&models.Client{}).Preload("Plan")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR phone LIKE ?", pattern, pattern)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if planID := c.Query("plan_id"); planID != "" {
		id, err := uuid.Parse(planID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan_id"})
			return
		}
		query = query.Where("current_plan_id = ?", id)
	}

	today := membership.DateOf(time.Now().UTC())
	if c.Query("expiring_soon") == "true" {
		windowEnd := today.AddDate(0, 0, membership.ExpiringSoonWindowDays)
		query = query.Where("status = ?", models.ClientStatusActive).
			Where("expiration_date >= ? AND expiration_date <= ?", today, windowEnd)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count clients"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var clients []models.Client
	if err := query.
		Order("full_name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clients"})
		return
	}

	responses := make([]clientResponse, 0, len(clients))
	for _, client := range clients {
		responses = append(responses, toClientResponse(client, today))
	}

	c.JSON(http.StatusOK, gin.H{
		"clients": responses,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// CreateClient registers a new member. New members start inactive until their
// first payment activates them.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := models.Client{
		FullName:              req.FullName,
		Phone:                 req.Phone,
		Email:                 req.Email,
		Status:                models.ClientStatusInactive,
		RegistrationDate:      membership.DateOf(time.Now().UTC()),
		BloodType:             req.BloodType,
		Gender:                req.Gender,
		MedicalConditions:     req.MedicalConditions,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	}

	if req.BirthDate != "" {
		birthDate, err := membership.ParseDate(req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid birth_date, expected YYYY-MM-DD"})
			return
		}
		client.BirthDate = &birthDate
	}

	if err := h.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}

	h.sendWelcome(&client)

	c.JSON(http.StatusCreated, toClientResponse(client, membership.DateOf(time.Now().UTC())))
}

// GetClient returns one member by ID
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	var client models.Client
	if err := h.db.Preload("Plan").First(&client, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	c.JSON(http.StatusOK, toClientResponse(client, membership.DateOf(time.Now().UTC())))
}

// UpdateClient updates a member's profile fields
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Status != nil {
		switch *req.Status {
		case models.ClientStatusActive, models.ClientStatusFrozen, models.ClientStatusInactive:
			updates["status"] = *req.Status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
	}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			updates["birth_date"] = nil
		} else {
			birthDate, err := membership.ParseDate(*req.BirthDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid birth_date, expected YYYY-MM-DD"})
				return
			}
			updates["birth_date"] = birthDate
		}
	}
	if req.BloodType != nil {
		updates["blood_type"] = *req.BloodType
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.MedicalConditions != nil {
		updates["medical_conditions"] = *req.MedicalConditions
	}
	if req.EmergencyContactName != nil {
		updates["emergency_contact_name"] = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		updates["emergency_contact_phone"] = *req.EmergencyContactPhone
	}

	if len(updates) > 0 {
		if err := h.db.Model(&client).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
			return
		}
	}

	if err := h.db.Preload("Plan").First(&client, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated client"})
		return
	}

	c.JSON(http.StatusOK, toClientResponse(client, membership.DateOf(time.Now().UTC())))
}

// DeleteClient soft-deletes a member. Their payment history is preserved.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}

// ClientStats returns member counts grouped by display status
func (h *ClientHandler) ClientStats(c *gin.Context) {
	var clients []models.Client
	if err := h.db.Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clients"})
		return
	}

	today := membership.DateOf(time.Now().UTC())
	counts := map[membership.DisplayStatus]int{}
	for i := range clients {
		counts[membership.Classify(&clients[i], today)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"total":         len(clients),
		"active":        counts[membership.StatusActive],
		"expiring_soon": counts[membership.StatusExpiringSoon],
		"frozen":        counts[membership.StatusFrozen],
		"inactive":      counts[membership.StatusInactive],
	})
}

var allowedPhotoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadPhoto stores a member's profile photo on disk and records its URL
func (h *ClientHandler) UploadPhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo file required"})
		return
	}
	if file.Size > h.uploads.MaxSizeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo exceeds maximum size"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	ext, ok := allowedPhotoTypes[contentType]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo must be JPEG, PNG or WebP"})
		return
	}

	if err := os.MkdirAll(h.uploads.Dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	filename := fmt.Sprintf("%s-%s%s", slug.Make(client.FullName), uuid.New().String()[:8], ext)
	destination := filepath.Join(h.uploads.Dir, filename)
	if err := c.SaveUploadedFile(file, destination); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo"})
		return
	}

	photoURL := "/uploads/" + filename
	if err := h.db.Model(&client).Update("photo_url", photoURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": photoURL})
}
