package domain

import "context"

// BookingRequest represents a consultation booking form submission.
// It is transient: built from the request body, validated, turned into two
// emails and discarded. Nothing is persisted.
type BookingRequest struct {
	Name    string `json:"name" binding:"required" validate:"required"`
	Email   string `json:"email" binding:"required" validate:"required"`
	Phone   string `json:"phone" binding:"required" validate:"required"`
	Company string `json:"company"`
	Service string `json:"service" binding:"required" validate:"required"`
	Message string `json:"message"`
}

// BookingUsecase defines the interface for booking form operations
type BookingUsecase interface {
	// SubmitBooking validates the request and dispatches the operator
	// notification and the submitter confirmation emails.
	SubmitBooking(ctx context.Context, req *BookingRequest) error
}
