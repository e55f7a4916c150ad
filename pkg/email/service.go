package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service sends back-office notification emails.
type Service struct {
	fromEmail   string
	fromName    string
	notifyEmail string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service.
// If sendGridAPIKey is provided, emails will be sent via SendGrid.
// Otherwise, emails will be logged to console (development mode).
func NewService(fromEmail, fromName, notifyEmail, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		notifyEmail: notifyEmail,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// NotifyNewContact tells the back office about a fresh submission.
// Best-effort: callers log failures and move on.
func (s *Service) NotifyNewContact(name, contactEmail, company, contactType string) error {
	if s.notifyEmail == "" {
		return nil
	}

	subject := fmt.Sprintf("New %s submission: %s", contactType, contactEmail)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>New contact submission</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Company:</strong> %s</p>
			<p><strong>Type:</strong> %s</p>
			<p>Review it in the admin panel.</p>
		</body>
		</html>
	`, name, contactEmail, company, contactType)

	plainText := fmt.Sprintf(`New contact submission

Name: %s
Email: %s
Company: %s
Type: %s

Review it in the admin panel.
`, name, contactEmail, company, contactType)

	if s.useSendGrid {
		return s.sendViaSendGrid(s.notifyEmail, "Admin", subject, body, plainText)
	}

	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s", s.notifyEmail)
	log.Printf("   %s / %s / %s / %s", name, contactEmail, company, contactType)
	return nil
}

func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}
