package membership

import (
	"time"

	"github.com/gymdesk/backend/internal/models"
)

// DisplayStatus is the status shown for a client, derived on every read from
// the stored fields and the current date. The stored status only changes on
// payment events and may lag behind; the derived value is authoritative for
// all read paths.
type DisplayStatus string

const (
	StatusActive       DisplayStatus = "active"
	StatusExpiringSoon DisplayStatus = "expiring_soon"
	StatusFrozen       DisplayStatus = "frozen"
	StatusInactive     DisplayStatus = "inactive"
)

// ExpiringSoonWindowDays is the lookahead window for the expiring-soon alert
const ExpiringSoonWindowDays = 3

// Classify derives the display status for a client as of the given date.
// Rules are evaluated in order, first match wins:
//  1. inactive stored status or soft-deleted record
//  2. frozen stored status
//  3. no expiration date: active only if a payment was ever recorded
//  4. expiration in the past: frozen, overriding a stale stored "active"
//  5. expiration within the lookahead window: expiring soon
//  6. otherwise active
func Classify(client *models.Client, today time.Time) DisplayStatus {
	if client.DeletedAt.Valid || client.Status == models.ClientStatusInactive {
		return StatusInactive
	}
	if client.Status == models.ClientStatusFrozen {
		return StatusFrozen
	}
	if client.ExpirationDate == nil {
		if client.LastPaymentDate != nil {
			return StatusActive
		}
		return StatusInactive
	}

	daysLeft := DaysBetween(today, *client.ExpirationDate)
	switch {
	case daysLeft < 0:
		return StatusFrozen
	case daysLeft <= ExpiringSoonWindowDays:
		return StatusExpiringSoon
	default:
		return StatusActive
	}
}
