package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"go-rotech-website/config"
)

// SendGridMailer sends mail through the SendGrid v3 API.
type SendGridMailer struct {
	apiKey string
}

func NewSendGridMailer(cfg *config.Config) *SendGridMailer {
	return &SendGridMailer{apiKey: cfg.SendGridAPIKey}
}

func (s *SendGridMailer) Send(msg Message) error {
	from := mail.NewEmail(msg.FromName, msg.From)
	to := mail.NewEmail(msg.ToName, msg.To)

	plain := msg.PlainBody
	if plain == "" {
		plain = msg.Subject
	}
	m := mail.NewSingleEmail(from, msg.Subject, to, plain, msg.HTMLBody)
	if msg.ReplyTo != "" {
		m.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(m)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned non-success status %d: %s", response.StatusCode, response.Body)
	}

	return nil
}

func (s *SendGridMailer) IsConfigured() bool {
	return s.apiKey != ""
}
