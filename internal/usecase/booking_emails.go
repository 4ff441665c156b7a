package usecase

import (
	"bytes"
	"fmt"
	"html/template"

	"go-rotech-website/internal/domain"
	"go-rotech-website/pkg/email"
)

// bookingEmailData holds the data for both booking emails. Optional fields
// arrive with their fallback text already applied.
type bookingEmailData struct {
	Name         string
	Email        string
	Phone        string
	Company      string
	ServiceLabel string
	Message      string
}

// notificationTemplate is the internal email sent to the operator address.
const notificationTemplate = `
        <h2>New Consultation Request</h2>
        <p><strong>Name:</strong> {{.Name}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        <p><strong>Phone:</strong> {{.Phone}}</p>
        <p><strong>Company:</strong> {{.Company}}</p>
        <p><strong>Service Interest:</strong> {{.ServiceLabel}}</p>
        <p><strong>Message:</strong></p>
        <p>{{.Message}}</p>

        <hr>
        <p><em>Submitted from Rotech Data Consult website</em></p>`

// confirmationTemplate is the branded email sent back to the submitter.
const confirmationTemplate = `
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
          <div style="background: linear-gradient(135deg, #7B2CBF, #5A189A); padding: 40px; text-align: center;">
            <h1 style="color: white; margin: 0;">Rotech Data Consult</h1>
            <p style="color: rgba(255,255,255,0.9); margin: 10px 0 0 0;">Monitor. Analyze. Thrive.</p>
          </div>

          <div style="padding: 30px; background: white;">
            <h2 style="color: #7B2CBF;">Thank you, {{.Name}}!</h2>

            <p>We've received your consultation request for <strong>{{.ServiceLabel}}</strong>.</p>

            <p>Our team will review your request and contact you within 24 hours to schedule your free consultation.</p>

            <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
              <h3 style="color: #7B2CBF; margin-top: 0;">What happens next?</h3>
              <ul style="color: #6c757d;">
                <li>Our expert will call you to understand your specific needs</li>
                <li>We'll schedule a convenient time for your consultation</li>
                <li>Receive a customized proposal for your project</li>
              </ul>
            </div>

            <p>In the meantime, feel free to explore our <a href="https://youtube.com/@rotechdataconsult" style="color: #7B2CBF;">YouTube channel</a> for free resources and tutorials.</p>

            <p>Best regards,<br>
            <strong>The Rotech Team</strong></p>
          </div>

          <div style="background: #f8f9fa; padding: 20px; text-align: center; color: #6c757d; font-size: 14px;">
            <p>Rotech Data Consult | Abuja, Nigeria</p>
            <p>Email: rotechdataconsult@gmail.com | WhatsApp: +234-902-761-5382</p>
          </div>
        </div>`

var (
	notificationTmpl = template.Must(template.New("booking_notification").Parse(notificationTemplate))
	confirmationTmpl = template.Must(template.New("booking_confirmation").Parse(confirmationTemplate))
)

// buildBookingEmails renders the operator notification and the submitter
// confirmation for a validated request.
func (uc *bookingUsecase) buildBookingEmails(req *domain.BookingRequest) (email.Message, email.Message, error) {
	data := bookingEmailData{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		ServiceLabel: domain.ServiceLabel(req.Service),
		Message:      req.Message,
	}
	if data.Company == "" {
		data.Company = "Not provided"
	}
	if data.Message == "" {
		data.Message = "No additional message"
	}

	var notificationBody bytes.Buffer
	if err := notificationTmpl.Execute(&notificationBody, data); err != nil {
		return email.Message{}, email.Message{}, fmt.Errorf("failed to execute notification template: %w", err)
	}

	var confirmationBody bytes.Buffer
	if err := confirmationTmpl.Execute(&confirmationBody, data); err != nil {
		return email.Message{}, email.Message{}, fmt.Errorf("failed to execute confirmation template: %w", err)
	}

	notification := email.Message{
		From:     uc.fromEmail,
		FromName: uc.fromName,
		To:       uc.adminEmail,
		ToName:   "Rotech Operations",
		ReplyTo:  req.Email,
		Subject:  fmt.Sprintf("New Consultation Request - %s", req.Name),
		HTMLBody: notificationBody.String(),
	}

	confirmation := email.Message{
		From:     uc.fromEmail,
		FromName: uc.fromName,
		To:       req.Email,
		ToName:   req.Name,
		Subject:  "Thank you for your consultation request - Rotech Data Consult",
		HTMLBody: confirmationBody.String(),
	}

	return notification, confirmation, nil
}
