package validation_test

import (
	"errors"
	"testing"

	"go-rotech-website/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type bookingShape struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Phone   string `validate:"required"`
	Service string `validate:"required"`
}

func TestFormatValidationErrorsUsesFormLabels(t *testing.T) {
	err := validator.New().Struct(&bookingShape{Email: "jane@x.com", Phone: "+234", Service: "training"})
	assert.Error(t, err)

	msg := validation.FormatValidationErrors(err)
	assert.Equal(t, "Full Name is required", msg)
}

func TestFormatValidationErrorsListsAllFields(t *testing.T) {
	err := validator.New().Struct(&bookingShape{})
	msg := validation.FormatValidationErrors(err)

	assert.Contains(t, msg, "Full Name is required")
	assert.Contains(t, msg, "Email Address is required")
	assert.Contains(t, msg, "Phone Number is required")
	assert.Contains(t, msg, "Service Interest is required")
}

func TestFormatValidationErrorsNonValidatorError(t *testing.T) {
	msg := validation.FormatValidationErrors(errors.New("unexpected EOF"))
	assert.Equal(t, "Missing required fields", msg)
}
