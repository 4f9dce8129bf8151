// Package model defines domain entities for the application.
package model

import "time"

// User represents a managed user whose web access is filtered.
// BlockedURLCount is a derived annotation, not a stored column.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	CreatedAt       time.Time `json:"created_at"`
	BlockedURLCount int64     `json:"blocked_url_count"`
}
