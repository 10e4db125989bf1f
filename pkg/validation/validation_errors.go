package validation

import (
	"fmt"

	"go-jobtracker-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// fieldNames maps struct field names to the JSON field names clients sent,
// so the UI can match errors back to inputs.
var fieldNames = map[string]string{
	"Name":        "name",
	"ProfileID":   "profileId",
	"CompanyName": "companyName",
	"JobURL":      "jobUrl",
	"Description": "description",
	"WorkType":    "workType",
	"Industry":    "industry",
	"Location":    "location",
	"Status":      "status",
	"Text":        "text",
	"Min":         "min",
	"Max":         "max",
	"Currency":    "currency",
	"Type":        "type",
	"Period":      "period",
	"JobData":     "jobData",
}

// FormatValidationErrors converts validator.ValidationErrors into a
// field-level error list for the response envelope.
func FormatValidationErrors(err error) []apperror.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperror.FieldError{{Field: "body", Message: err.Error()}}
	}

	details := make([]apperror.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, apperror.FieldError{
			Field:   fieldName(e.Field()),
			Message: formatSingleError(e),
		})
	}
	return details
}

func fieldName(structField string) string {
	if name, ok := fieldNames[structField]; ok {
		return name
	}
	return structField
}

func formatSingleError(e validator.FieldError) string {
	label := fieldName(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
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
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "uuid":
		return fmt.Sprintf("%s must be a valid identifier", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
