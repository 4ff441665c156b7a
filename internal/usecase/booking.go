package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-rotech-website/config"
	"go-rotech-website/internal/domain"
	"go-rotech-website/pkg/email"
	"go-rotech-website/pkg/logger"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMissingFields means one of name/email/phone/service was empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrMailerNotConfigured means the mail provider has no credentials.
	ErrMailerNotConfigured = errors.New("mail service is not configured")
)

type bookingUsecase struct {
	mailer     email.Mailer
	validate   *validator.Validate
	fromEmail  string
	fromName   string
	adminEmail string
}

// NewBookingUsecase creates a new booking usecase
func NewBookingUsecase(mailer email.Mailer, validate *validator.Validate, cfg *config.Config) domain.BookingUsecase {
	return &bookingUsecase{
		mailer:     mailer,
		validate:   validate,
		fromEmail:  cfg.SMTPFromEmail,
		fromName:   cfg.SendGridFromName,
		adminEmail: cfg.AdminEmail,
	}
}

// SubmitBooking re-validates the request server-side (the client is never
// trusted) and dispatches the two booking emails sequentially. If the first
// send fails the second is never attempted and the whole submission fails.
func (uc *bookingUsecase) SubmitBooking(ctx context.Context, req *domain.BookingRequest) error {
	// Validate input (additional validation beyond binding)
	trimmed := domain.BookingRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Company: strings.TrimSpace(req.Company),
		Service: strings.TrimSpace(req.Service),
		Message: strings.TrimSpace(req.Message),
	}
	if err := uc.validate.Struct(&trimmed); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingFields, err)
	}

	if !uc.mailer.IsConfigured() {
		return ErrMailerNotConfigured
	}

	notification, confirmation, err := uc.buildBookingEmails(&trimmed)
	if err != nil {
		return fmt.Errorf("failed to render booking emails: %w", err)
	}

	if err := uc.mailer.Send(notification); err != nil {
		logger.Log.Error("Failed to send booking notification",
			"to", uc.adminEmail, "error", err)
		return fmt.Errorf("failed to send booking notification: %w", err)
	}

	if err := uc.mailer.Send(confirmation); err != nil {
		logger.Log.Error("Failed to send booking confirmation",
			"to", trimmed.Email, "error", err)
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}

	return nil
}
