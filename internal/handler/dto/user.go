// Package dto defines request/response types for the HTTP API.
//
// JSON field names follow the dashboard's wire contract (camelCase, and the
// `_count` annotation on users), not Go conventions.
package dto

import (
	"time"

	"github.com/urlfence/urlfence/internal/model"
)

// CreateUserRequest is the payload for POST /api/users.
type CreateUserRequest struct {
	Email string `json:"email"`
}

// UserCount carries relation counts on a user response.
type UserCount struct {
	BlockedURLs int64 `json:"blockedUrls"`
}

// UserResponse is the API representation of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Count     UserCount `json:"_count"`
}

// ToUserResponse converts a user model to its API representation.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Count: UserCount{
			BlockedURLs: user.BlockedURLCount,
		},
	}
}

// ToUserListResponse converts a slice of user models.
func ToUserListResponse(users []*model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
