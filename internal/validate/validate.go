// Package validate provides field-level input validation for API payloads.
//
// Validators return a list of FieldError values; an empty list means the
// payload is valid. Messages are part of the API contract and mirror the
// dashboard's original wording.
package validate

import (
	"net/url"
	"regexp"
	"strings"
)

// Validation limits.
const (
	// MaxEmailLength caps the email field.
	MaxEmailLength = 254

	// MaxURLLength caps blocked URLs.
	MaxURLLength = 2048
)

// Contract messages.
const (
	MsgInvalidEmail     = "Email inválido"
	MsgPasswordRequired = "Senha é obrigatória"
	MsgInvalidURL       = "URL inválida"
)

// emailPattern is a pragmatic email shape check: one @, non-empty local
// part, domain with at least one dot and no spaces.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError describes a single failed field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Email checks that the value looks like an email address.
func Email(value string) bool {
	if value == "" || len(value) > MaxEmailLength {
		return false
	}
	return emailPattern.MatchString(value)
}

// URL checks that the value is a well-formed absolute http(s) URL.
func URL(value string) bool {
	if value == "" || len(value) > MaxURLLength {
		return false
	}

	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}

	return parsed.Host != ""
}

// Login validates a login payload.
func Login(email, password string) []FieldError {
	var errs []FieldError
	if !Email(email) {
		errs = append(errs, FieldError{Field: "email", Message: MsgInvalidEmail})
	}
	if password == "" {
		errs = append(errs, FieldError{Field: "password", Message: MsgPasswordRequired})
	}
	return errs
}

// CreateUser validates a user-creation payload.
func CreateUser(email string) []FieldError {
	if !Email(email) {
		return []FieldError{{Field: "email", Message: MsgInvalidEmail}}
	}
	return nil
}

// CreateBlockedURL validates a block-URL payload.
func CreateBlockedURL(rawURL string) []FieldError {
	if !URL(rawURL) {
		return []FieldError{{Field: "url", Message: MsgInvalidURL}}
	}
	return nil
}
