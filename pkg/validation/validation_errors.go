package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown on the booking form
var FieldLabels = map[string]string{
	"Name":    "Full Name",
	"Email":   "Email Address",
	"Phone":   "Phone Number",
	"Company": "Company/Organization",
	"Service": "Service Interest",
	"Message": "Message",
}

func label(field string) string {
	if l, ok := FieldLabels[field]; ok {
		return l
	}
	return field
}

// FormatValidationErrors turns a validator error into one user-facing
// sentence listing the offending fields. Non-validator errors get a generic
// missing-fields message so internals never leak.
func FormatValidationErrors(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Missing required fields"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", label(fe.Field())))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", label(fe.Field())))
		}
	}
	return strings.Join(parts, "; ")
}
