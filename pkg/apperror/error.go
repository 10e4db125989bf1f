package apperror

import "net/http"

// FieldError carries per-field validation detail so the UI can highlight
// the offending input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation is a 400 carrying a field-level error list. Only validation
// failures expose detail; everything else stays generic.
func Validation(details []FieldError) *AppError {
	e := New(http.StatusBadRequest, "Validation Error", nil)
	e.Details = details
	return e
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

// InvalidProfile is the flat 400 for a profile that is missing or not owned
// by the caller. Deliberately detail-free: the two cases must be
// indistinguishable so profile existence never leaks across users.
func InvalidProfile() *AppError {
	return New(http.StatusBadRequest, "Invalid Profile ID", nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Store wraps an Entity Store failure. The wrapped error is logged
// server-side and never serialized to the client.
func Store(err error) *AppError {
	return New(http.StatusInternalServerError, "Database Error", err)
}

// Extraction wraps an unusable response from the analysis adapter.
func Extraction(err error) *AppError {
	return New(http.StatusInternalServerError, "Failed to analyze job", err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
