// Package model defines domain entities for the application.
package model

import "time"

// BlockedURL is a per-user deny-list entry. The pair (URL, UserID) is
// unique: a user cannot block the same URL twice.
type BlockedURL struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BelongsTo reports whether the entry is owned by the given user.
// Deletion must verify ownership against the path's user id before
// removing the record.
func (b *BlockedURL) BelongsTo(userID string) bool {
	return b.UserID == userID
}
