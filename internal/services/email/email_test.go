package email

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gymdesk/backend/internal/config"
)

func TestNewEmailServiceUsesConfig(t *testing.T) {
	svc := NewEmailService(config.SMTPConfig{
		Host:      "smtp.gym.test",
		Port:      "2525",
		Username:  "frontdesk",
		Password:  "secret",
		FromEmail: "noreply@gym.test",
	})

	assert.Equal(t, "smtp.gym.test", svc.smtpHost)
	assert.Equal(t, "2525", svc.smtpPort)
	assert.Equal(t, "frontdesk", svc.smtpUsername)
	assert.Equal(t, "secret", svc.smtpPassword)
	assert.Equal(t, "noreply@gym.test", svc.fromEmail)
}

func TestSendEmailRequiresConfiguration(t *testing.T) {
	svc := NewEmailService(config.SMTPConfig{})

	err := svc.sendEmail("to@gym.test", "Subject", "<p>body</p>")

	assert.Error(t, err)
}
