// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/urlfence/urlfence/internal/cache"
	"github.com/urlfence/urlfence/internal/model"
	"github.com/urlfence/urlfence/internal/repository"
)

// Service errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("user already exists with this email")
	ErrBlockedURLNotFound = errors.New("blocked URL not found")
	ErrURLAlreadyBlocked  = errors.New("URL already blocked for this user")
	ErrNotOwner           = errors.New("blocked URL does not belong to user")
)

// UserService handles user business logic.
type UserService struct {
	repo  *repository.Repository
	cache *cache.Cache
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository, cache *cache.Cache) *UserService {
	return &UserService{
		repo:  repo,
		cache: cache,
	}
}

// ListUsers returns all users ordered by creation time descending, each
// annotated with its blocked-URL count. Counts are read through the cache;
// misses fall back to a single grouped COUNT query and are backfilled.
// Cache failures degrade silently to the database.
func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return users, nil
	}

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	cached, err := s.cache.GetBlockedURLCounts(ctx, ids)
	if err != nil {
		cached = map[string]int64{}
	}

	var missed []string
	for _, id := range ids {
		if _, ok := cached[id]; !ok {
			missed = append(missed, id)
		}
	}

	if len(missed) > 0 {
		counted, err := s.repo.CountBlockedURLs(ctx, missed)
		if err != nil {
			return nil, err
		}

		backfill := make(map[string]int64, len(missed))
		for _, id := range missed {
			count := counted[id] // absent means zero
			cached[id] = count
			backfill[id] = count
		}

		// Best effort - the next listing recomputes on miss anyway.
		_ = s.cache.SetBlockedURLCounts(ctx, backfill)
	}

	for _, u := range users {
		u.BlockedURLCount = cached[u.ID]
	}

	return users, nil
}

// CreateUser creates a new user with the given email.
// Returns ErrEmailExists when the email is already registered, whether
// caught by the pre-check or by the unique constraint under a race.
func (s *UserService) CreateUser(ctx context.Context, email string) (*model.User, error) {
	email = strings.TrimSpace(email)

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user := &model.User{
		ID:        newID(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	// Prime the count cache so the first listing doesn't need a COUNT.
	_ = s.cache.SetBlockedURLCount(ctx, user.ID, 0)

	return user, nil
}

// newID generates a ULID for entity primary keys.
func newID() string {
	return ulid.Make().String()
}
