// File: /services/email_service.go
package services

import (
	"fmt"

	"fueltrack-api/config"
	"fueltrack-api/models"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Sender delivers a composed message. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailService struct {
	sender    Sender
	fromEmail string
	fromName  string
}

// NewEmailService returns a service backed by an SMTP dialer, or a disabled
// service when no SMTP host is configured.
func NewEmailService(cfg *config.Config) *EmailService {
	var sender Sender
	if cfg.MailEnabled() {
		sender = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return NewEmailServiceWithSender(sender, cfg.FromEmail, cfg.FromName)
}

// NewEmailServiceWithSender is used by tests and by callers with their own transport.
func NewEmailServiceWithSender(sender Sender, fromEmail, fromName string) *EmailService {
	return &EmailService{
		sender:    sender,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (es *EmailService) Enabled() bool {
	return es != nil && es.sender != nil
}

func (es *EmailService) newMessage(to, subject string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.fromName, es.fromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	return m
}

func (es *EmailService) skip(kind, to string) bool {
	if es.Enabled() {
		return false
	}
	log.WithFields(log.Fields{"kind": kind, "to": to}).Debug("Mail disabled, skipping email")
	return true
}

func (es *EmailService) send(m *gomail.Message, kind, to string) error {
	if err := es.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send %s email: %w", kind, err)
	}
	log.WithFields(log.Fields{"kind": kind, "to": to}).Info("Email sent")
	return nil
}

// SendWelcomeEmail greets a newly registered user.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	if es.skip("welcome", email) {
		return nil
	}
	m := es.newMessage(email, "Welcome to FuelTrack")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome to FuelTrack</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #1f7a4d; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>FuelTrack</h1>
        </div>
        <div class="content">
            <h2>Hello %s!</h2>
            <p>Your account is ready. Add your first vehicle, declare which energy types it uses and start logging refuels and charging sessions.</p>
            <p>Consumption and cost statistics appear as soon as a vehicle has two entries.</p>
        </div>
        <div class="footer">
            <p>This is an automated email, please do not reply.</p>
        </div>
    </div>
</body>
</html>`, name)

	textBody := fmt.Sprintf(`Hello %s!

Your account is ready. Add your first vehicle, declare which energy types it uses and start logging refuels and charging sessions.

Consumption and cost statistics appear as soon as a vehicle has two entries.
`, name)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	return es.send(m, "welcome", email)
}

// SendServiceReminder tells the owner that a scheduled service is coming up.
func (es *EmailService) SendServiceReminder(email, name, vehicleLabel string, record models.ServiceRecord) error {
	if es.skip("service_reminder", email) {
		return nil
	}
	m := es.newMessage(email, fmt.Sprintf("Service due for %s", vehicleLabel))

	due := "soon"
	if record.NextServiceDate != nil {
		due = "on " + record.NextServiceDate.Format("2006-01-02")
	}
	mileage := ""
	if record.NextServiceMileage != nil {
		mileage = fmt.Sprintf(" or at %.0f km", *record.NextServiceMileage)
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Service reminder</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Hello %s,</h2>
    <p>The next <strong>%s</strong> for <strong>%s</strong> is due %s%s.</p>
    <p>%s</p>
</body>
</html>`, name, record.ServiceType, vehicleLabel, due, mileage, record.Description)

	textBody := fmt.Sprintf(`Hello %s,

The next %s for %s is due %s%s.

%s
`, name, record.ServiceType, vehicleLabel, due, mileage, record.Description)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	return es.send(m, "service_reminder", email)
}
