package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/gymdesk/backend/internal/models"
)

func clientWith(status models.ClientStatus, expiration *time.Time, lastPayment *time.Time) *models.Client {
	return &models.Client{
		Status:          status,
		ExpirationDate:  expiration,
		LastPaymentDate: lastPayment,
	}
}

func TestClassifyStoredInactiveWins(t *testing.T) {
	expiration := date("2099-01-01")

	got := Classify(clientWith(models.ClientStatusInactive, &expiration, &expiration), date("2025-01-01"))

	assert.Equal(t, StatusInactive, got)
}

func TestClassifySoftDeletedIsInactive(t *testing.T) {
	expiration := date("2099-01-01")
	client := clientWith(models.ClientStatusActive, &expiration, &expiration)
	client.DeletedAt = gorm.DeletedAt{Time: date("2025-01-01"), Valid: true}

	assert.Equal(t, StatusInactive, Classify(client, date("2025-01-01")))
}

func TestClassifyStoredFrozenWins(t *testing.T) {
	expiration := date("2099-01-01")

	got := Classify(clientWith(models.ClientStatusFrozen, &expiration, &expiration), date("2025-01-01"))

	assert.Equal(t, StatusFrozen, got)
}

func TestClassifyNoExpirationDate(t *testing.T) {
	lastPayment := date("2025-01-01")

	assert.Equal(t, StatusActive, Classify(clientWith(models.ClientStatusActive, nil, &lastPayment), date("2025-01-10")))
	assert.Equal(t, StatusInactive, Classify(clientWith(models.ClientStatusActive, nil, nil), date("2025-01-10")))
}

func TestClassifyExpirationBoundary(t *testing.T) {
	expiration := date("2025-01-31")
	client := clientWith(models.ClientStatusActive, &expiration, &expiration)

	// Still covered on the expiration date itself, expired the day after.
	assert.Equal(t, StatusExpiringSoon, Classify(client, date("2025-01-31")))
	assert.Equal(t, StatusFrozen, Classify(client, date("2025-02-01")))
}

func TestClassifyExpiringSoonWindow(t *testing.T) {
	expiration := date("2025-01-31")
	client := clientWith(models.ClientStatusActive, &expiration, &expiration)

	tests := []struct {
		today string
		want  DisplayStatus
	}{
		{"2025-01-27", StatusActive},       // 4 days out
		{"2025-01-28", StatusExpiringSoon}, // 3 days out
		{"2025-01-30", StatusExpiringSoon},
		{"2025-01-31", StatusExpiringSoon}, // expires today
		{"2025-02-01", StatusFrozen},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(client, date(tt.today)), "today %s", tt.today)
	}
}

func TestClassifyIsPure(t *testing.T) {
	expiration := date("2025-06-30")
	client := clientWith(models.ClientStatusActive, &expiration, &expiration)
	today := date("2025-06-01")

	first := Classify(client, today)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(client, today))
	}
	assert.Equal(t, models.ClientStatusActive, client.Status, "classification must not mutate the client")
}
