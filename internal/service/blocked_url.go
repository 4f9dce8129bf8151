package service

import (
	"context"
	"errors"
	"time"

	"github.com/urlfence/urlfence/internal/cache"
	"github.com/urlfence/urlfence/internal/model"
	"github.com/urlfence/urlfence/internal/repository"
)

// BlockedURLService handles deny-list business logic.
type BlockedURLService struct {
	repo  *repository.Repository
	cache *cache.Cache
}

// NewBlockedURLService creates a new BlockedURLService.
func NewBlockedURLService(repo *repository.Repository, cache *cache.Cache) *BlockedURLService {
	return &BlockedURLService{
		repo:  repo,
		cache: cache,
	}
}

// ListBlockedURLs returns a user's blocked URLs ordered by creation time
// descending. Returns ErrUserNotFound if the user does not exist.
func (s *BlockedURLService) ListBlockedURLs(ctx context.Context, userID string) ([]*model.BlockedURL, error) {
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.repo.ListBlockedURLsByUser(ctx, userID)
}

// BlockURL adds a URL to a user's deny list.
// Returns ErrUserNotFound if the user does not exist and ErrURLAlreadyBlocked
// if the user already blocks this URL - including when a concurrent request
// slips past the pre-check and hits the unique constraint.
func (s *BlockedURLService) BlockURL(ctx context.Context, userID, url string) (*model.BlockedURL, error) {
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	_, err := s.repo.GetBlockedURLByUserAndURL(ctx, userID, url)
	if err == nil {
		return nil, ErrURLAlreadyBlocked
	}
	if !errors.Is(err, repository.ErrBlockedURLNotFound) {
		return nil, err
	}

	blocked := &model.BlockedURL{
		ID:        newID(),
		URL:       url,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateBlockedURL(ctx, blocked); err != nil {
		if errors.Is(err, repository.ErrURLBlocked) {
			return nil, ErrURLAlreadyBlocked
		}
		return nil, err
	}

	// Count changed - drop the cached value.
	_ = s.cache.InvalidateBlockedURLCount(ctx, userID)

	return blocked, nil
}

// UnblockURL deletes a blocked URL after verifying it belongs to the user in
// the request path. Ownership is decided by comparing the record's user_id
// to the path parameter - there is no per-user authenticated principal,
// only the shared admin session.
// Returns ErrBlockedURLNotFound if the record is absent and ErrNotOwner on
// mismatch, leaving the record intact.
func (s *BlockedURLService) UnblockURL(ctx context.Context, userID, urlID string) error {
	blocked, err := s.repo.GetBlockedURLByID(ctx, urlID)
	if err != nil {
		if errors.Is(err, repository.ErrBlockedURLNotFound) {
			return ErrBlockedURLNotFound
		}
		return err
	}

	if !blocked.BelongsTo(userID) {
		return ErrNotOwner
	}

	if err := s.repo.DeleteBlockedURL(ctx, urlID); err != nil {
		if errors.Is(err, repository.ErrBlockedURLNotFound) {
			return ErrBlockedURLNotFound
		}
		return err
	}

	_ = s.cache.InvalidateBlockedURLCount(ctx, blocked.UserID)

	return nil
}
