package email

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/gymdesk/backend/internal/config"
	"github.com/gymdesk/backend/internal/models"
	"github.com/gymdesk/backend/internal/services/membership"
)

// EmailService handles sending emails
type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
}

// NewEmailService creates a new email service
func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{
		smtpHost:     cfg.Host,
		smtpPort:     cfg.Port,
		smtpUsername: cfg.Username,
		smtpPassword: cfg.Password,
		fromEmail:    cfg.FromEmail,
	}
}

// SendExpiryDigest sends the staff a summary of memberships expiring within
// the warning window. It only notifies; membership state is never changed here.
func (s *EmailService) SendExpiryDigest(toEmail string, clients []models.Client) error {
	subject := fmt.Sprintf("GymDesk: %d memberships expiring soon", len(clients))

	var rows strings.Builder
	for _, c := range clients {
		expiration := "unknown"
		if c.ExpirationDate != nil {
			expiration = c.ExpirationDate.Format(membership.DateLayout)
		}
		rows.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td></tr>\n", c.FullName, c.Phone, expiration))
	}

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; line-height: 1.6; }
			.container { max-width: 600px; margin: 0 auto; padding: 20px; }
			.header { background-color: #4F46E5; color: white; padding: 10px; text-align: center; }
			table { border-collapse: collapse; width: 100%%; }
			th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>GymDesk</h1>
			</div>
			<h2>Memberships expiring in the next days</h2>
			<table>
				<tr><th>Member</th><th>Phone</th><th>Expires</th></tr>
				%s
			</table>
			<p>Reach out to these members before their access lapses.</p>
		</div>
	</body>
	</html>
	`, rows.String())

	return s.sendEmail(toEmail, subject, body)
}

// SendWelcomeEmail greets a newly registered client
func (s *EmailService) SendWelcomeEmail(toEmail, fullName string) error {
	subject := "Welcome to GymDesk"
	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<body>
		<h2>Hello %s,</h2>
		<p>Your membership profile has been created. Pick a plan at the front desk to activate it.</p>
		<p>See you at the gym!</p>
	</body>
	</html>
	`, fullName)

	return s.sendEmail(toEmail, subject, body)
}

// sendEmail sends an email with HTML content
func (s *EmailService) sendEmail(toEmail, subject, htmlBody string) error {
	if s.smtpHost == "" || s.smtpPort == "" || s.smtpUsername == "" || s.smtpPassword == "" {
		log.Println("Email service not configured properly. Check environment variables.")
		return fmt.Errorf("email service not configured")
	}

	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	from := fmt.Sprintf("From: GymDesk <%s>\n", s.fromEmail)
	to := fmt.Sprintf("To: %s\n", toEmail)
	subjectLine := fmt.Sprintf("Subject: %s\n", subject)

	message := []byte(from + to + subjectLine + mime + htmlBody)

	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)
	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)

	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{toEmail}, message); err != nil {
		log.Printf("Failed to send email to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
