package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"portfolio-backend/internal/models"
)

type EmailService struct {
	host    string
	port    string
	user    string
	pass    string
	from    string
	to      string
	devMode bool
}

func NewEmailService(host, port, user, pass, from, to string) *EmailService {
	devMode := host == "" || user == ""
	if devMode {
		log.Println("⚠ Email service running in DEV MODE (logging to console)")
	}
	return &EmailService{
		host:    host,
		port:    port,
		user:    user,
		pass:    pass,
		from:    from,
		to:      to,
		devMode: devMode,
	}
}

// SendContactNotification relays a contact submission to the site owner.
func (s *EmailService) SendContactNotification(c *models.Contact) error {
	subject := "New contact message"
	if c.Subject != nil {
		subject = fmt.Sprintf("New contact message: %s", *c.Subject)
	}

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; margin: 0; padding: 0; background-color: #f8fafc;">
  <div style="max-width: 480px; margin: 40px auto; background: white; border-radius: 12px; padding: 32px;">
    <h2 style="margin: 0 0 16px; font-size: 20px; color: #1e293b;">New Portfolio Message</h2>
    <p style="color: #64748b; font-size: 14px; margin: 0 0 8px;"><strong>From:</strong> %s &lt;%s&gt;</p>
    <p style="color: #334155; font-size: 14px; line-height: 1.6; white-space: pre-wrap;">%s</p>
  </div>
</body>
</html>`, c.Name, c.Email, c.Message)

	return s.sendHTML(s.to, subject, body)
}

func (s *EmailService) sendHTML(to, subject, htmlBody string) error {
	if s.devMode {
		log.Printf("📧 [DEV EMAIL] To: %s | Subject: %s", to, subject)
		return nil
	}

	headers := []string{
		fmt.Sprintf("From: %s", s.from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
	}

	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	log.Printf("📧 Email sent to %s: %s", to, subject)
	return nil
}
