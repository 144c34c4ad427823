package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"

	"github.com/gymdesk/backend/internal/models"
	"github.com/gymdesk/backend/internal/services/email"
	"github.com/gymdesk/backend/internal/services/membership"
)

// ExpiryDigestJob emails the staff a daily list of memberships that are
// about to expire. It only notifies; stored client status is never touched.
type ExpiryDigestJob struct {
	db           *gorm.DB
	emailService *email.EmailService
	digestEmail  string
	scheduler    *gocron.Scheduler
}

// NewExpiryDigestJob creates a new expiry digest job
func NewExpiryDigestJob(db *gorm.DB, emailService *email.EmailService, digestEmail string) *ExpiryDigestJob {
	return &ExpiryDigestJob{
		db:           db,
		emailService: emailService,
		digestEmail:  digestEmail,
		scheduler:    gocron.NewScheduler(time.UTC),
	}
}

// Start schedules the digest to run daily at the given hour
func (j *ExpiryDigestJob) Start(hour int) error {
	if j.digestEmail == "" {
		log.Println("Expiry digest disabled: no digest email configured")
		return nil
	}

	at := fmt.Sprintf("%02d:00", hour%24)
	if _, err := j.scheduler.Every(1).Day().At(at).Do(j.Run); err != nil {
		return fmt.Errorf("failed to schedule expiry digest: %w", err)
	}

	j.scheduler.StartAsync()
	log.Printf("Expiry digest scheduled daily at %s UTC", at)
	return nil
}

// Stop stops the scheduler
func (j *ExpiryDigestJob) Stop() {
	j.scheduler.Stop()
}

// Run finds active memberships expiring within the warning window and sends
// the digest
func (j *ExpiryDigestJob) Run() {
	today := membership.DateOf(time.Now().UTC())
	windowEnd := today.AddDate(0, 0, membership.ExpiringSoonWindowDays)

	var clients []models.Client
	if err := j.db.
		Where("status = ?", models.ClientStatusActive).
		Where("expiration_date >= ? AND expiration_date <= ?", today, windowEnd).
		Order("expiration_date ASC").
		Find(&clients).Error; err != nil {
		log.Printf("Expiry digest query failed: %v", err)
		return
	}

	if len(clients) == 0 {
		log.Println("Expiry digest: no memberships expiring soon")
		return
	}

	if err := j.emailService.SendExpiryDigest(j.digestEmail, clients); err != nil {
		log.Printf("Expiry digest send failed: %v", err)
		return
	}

	log.Printf("Expiry digest sent for %d memberships", len(clients))
}
