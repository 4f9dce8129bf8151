package dto

import "github.com/urlfence/urlfence/internal/validate"

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse carries a success message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a single error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries field-level validation failures.
type ValidationErrorResponse struct {
	Error []validate.FieldError `json:"error"`
}
