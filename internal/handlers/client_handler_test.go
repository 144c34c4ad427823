package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gymdesk/backend/internal/models"
)

type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) SendWelcomeEmail(toEmail, fullName string) error {
	m.sent = append(m.sent, toEmail)
	return m.err
}

func TestSendWelcomeGreetsMembersWithEmail(t *testing.T) {
	mailer := &fakeMailer{}
	h := &ClientHandler{mailer: mailer}
	address := "member@gym.test"

	h.sendWelcome(&models.Client{FullName: "Ana Torres", Email: &address})

	assert.Equal(t, []string{"member@gym.test"}, mailer.sent)
}

func TestSendWelcomeSkipsMembersWithoutEmail(t *testing.T) {
	mailer := &fakeMailer{}
	h := &ClientHandler{mailer: mailer}
	empty := ""

	h.sendWelcome(&models.Client{FullName: "No Email"})
	h.sendWelcome(&models.Client{FullName: "Blank Email", Email: &empty})

	assert.Empty(t, mailer.sent)
}

func TestSendWelcomeSwallowsSendFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	h := &ClientHandler{mailer: mailer}
	address := "member@gym.test"

	// Registration already succeeded; a mail failure must not panic or block.
	h.sendWelcome(&models.Client{FullName: "Ana Torres", Email: &address})

	assert.Len(t, mailer.sent, 1)
}

func TestSendWelcomeWithoutMailerConfigured(t *testing.T) {
	h := &ClientHandler{}
	address := "member@gym.test"

	h.sendWelcome(&models.Client{FullName: "Ana Torres", Email: &address})
}
