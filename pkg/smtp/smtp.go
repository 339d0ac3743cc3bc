package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendContactMessage(name string, email string, phone string, message string) error
}

type smtp struct {
	auth      smtpPkg.Auth
	mail      string
	host      string
	port      string
	recipient string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{
		auth:      auth,
		mail:      mail,
		host:      host,
		port:      port,
		recipient: os.Getenv("CONTACT_RECIPIENT"),
	}
}

// SendContactMessage delivers one contact-form submission to the configured
// recipient. The send blocks until the SMTP exchange finishes; transport
// errors are returned to the caller untouched.
func (s *smtp) SendContactMessage(name string, email string, phone string, message string) error {
	to := []string{s.recipient}

	body := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: New Contact Form Submission\r\n\r\nName: %s\nEmail: %s\nPhone: %s\nMessage: %s",
		s.recipient, name, email, phone, message))

	if err := smtpPkg.SendMail(fmt.Sprintf("%s:%s", s.host, s.port), s.auth, s.mail, to, body); err != nil {
		return err
	}

	return nil
}
