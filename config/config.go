package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string
	// Public base URL of the deployed site (used in page metadata)
	PublicBaseURL string
	// Mail provider selection: "smtp" (default) or "sendgrid"
	MailProvider string
	// SMTP Configuration (Brevo / any relay)
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string // Verified sender email (different from SMTP login)
	// SendGrid Configuration
	SendGridAPIKey   string
	SendGridFromName string
	// Fixed operator destination for booking notifications
	AdminEmail string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		MailProvider:  strings.ToLower(getEnv("MAIL_PROVIDER", "smtp")),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@rotechconsult.com"),
		// SendGrid Configuration
		SendGridAPIKey:   getEnv("SENDGRID_API_KEY", ""),
		SendGridFromName: getEnv("SENDGRID_FROM_NAME", "Rotech Data Consult"),
		// Operator destination
		AdminEmail: getEnv("ADMIN_EMAIL", "rotechdataconsult@gmail.com"),
	}

	if cfg.MailProvider != "smtp" && cfg.MailProvider != "sendgrid" {
		log.Printf("WARNING: unknown MAIL_PROVIDER %q, falling back to smtp", cfg.MailProvider)
		cfg.MailProvider = "smtp"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
