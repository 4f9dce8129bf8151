package auth

import "crypto/subtle"

// AdminCredentials holds the single configured admin identity.
// There is no per-user account lookup; the dashboard has exactly one
// operator, defined entirely by configuration.
type AdminCredentials struct {
	Email    string
	Password string
}

// Verify compares the submitted credentials against the configured values.
// Both comparisons always run, in constant time, so the response does not
// reveal which of the two fields was wrong.
func (c AdminCredentials) Verify(email, password string) bool {
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(c.Email)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	return emailMatch && passwordMatch
}
