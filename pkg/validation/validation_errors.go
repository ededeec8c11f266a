package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Email":           "Email",
	"Password":        "Password",
	"CurrentPassword": "Current password",
	"NewPassword":     "New password",
	"Name":            "Name",
	"Title":           "Title",
	"Description":     "Description",
	"Subject":         "Subject",
	"Message":         "Message",
	"Technologies":    "Technologies",
	"Organization":    "Organization",
	"Platform":        "Platform",
	"StartDate":       "Start date",
	"Type":            "Type",
	"Status":          "Status",
	"Category":        "Category",
	"Proficiency":     "Proficiency",
	"ReplyText":       "Reply text",
}

// FormatValidationErrors converts validator.ValidationErrors into
// field-level messages suitable for the error envelope.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", label, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
