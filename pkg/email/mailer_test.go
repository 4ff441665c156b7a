package email_test

import (
	"testing"

	"go-rotech-website/config"
	"go-rotech-website/pkg/email"

	"github.com/stretchr/testify/assert"
)

func TestSMTPMailerIsConfigured(t *testing.T) {
	cfg := &config.Config{
		SMTPHost:     "smtp-relay.brevo.com",
		SMTPPort:     "587",
		SMTPUsername: "login@rotechconsult.com",
		SMTPPassword: "secret",
	}
	assert.True(t, email.NewSMTPMailer(cfg).IsConfigured())

	cfg.SMTPPassword = ""
	assert.False(t, email.NewSMTPMailer(cfg).IsConfigured())

	assert.False(t, email.NewSMTPMailer(&config.Config{}).IsConfigured())
}

func TestSendGridMailerIsConfigured(t *testing.T) {
	assert.True(t, email.NewSendGridMailer(&config.Config{SendGridAPIKey: "SG.key"}).IsConfigured())
	assert.False(t, email.NewSendGridMailer(&config.Config{}).IsConfigured())
}
