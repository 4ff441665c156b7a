package email

import (
	"fmt"
	"net/smtp"

	"go-rotech-website/config"
)

// SMTPMailer sends mail through a plain-auth SMTP relay (Brevo by default).
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

// Send builds a MIME message and hands it to the relay.
func (s *SMTPMailer) Send(msg Message) error {
	headers := fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n",
		msg.From,
		msg.To,
		msg.Subject,
	)
	if msg.ReplyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", msg.ReplyTo)
	}

	body := []byte(headers + "\r\n" + msg.HTMLBody)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, msg.From, []string{msg.To}, body); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the relay has valid SMTP credentials.
func (s *SMTPMailer) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
