package dto

import (
	"time"

	"github.com/urlfence/urlfence/internal/model"
)

// CreateBlockedURLRequest is the payload for POST /api/users/{id}/blocked-urls.
type CreateBlockedURLRequest struct {
	URL string `json:"url"`
}

// BlockedURLResponse is the API representation of a deny-list entry.
type BlockedURLResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToBlockedURLResponse converts a blocked-URL model to its API representation.
func ToBlockedURLResponse(blocked *model.BlockedURL) BlockedURLResponse {
	return BlockedURLResponse{
		ID:        blocked.ID,
		URL:       blocked.URL,
		UserID:    blocked.UserID,
		CreatedAt: blocked.CreatedAt,
	}
}

// ToBlockedURLListResponse converts a slice of blocked-URL models.
func ToBlockedURLListResponse(urls []*model.BlockedURL) []BlockedURLResponse {
	out := make([]BlockedURLResponse, 0, len(urls))
	for _, b := range urls {
		out = append(out, ToBlockedURLResponse(b))
	}
	return out
}
