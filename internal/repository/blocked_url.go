package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/urlfence/urlfence/internal/model"
)

// Common errors for blocked-URL repository operations.
var (
	ErrBlockedURLNotFound = errors.New("blocked URL not found")
	ErrURLBlocked         = errors.New("URL already blocked for user")
)

// CreateBlockedURL inserts a new blocked URL into the database.
// Returns ErrURLBlocked if the (url, user_id) pair already exists; the
// unique constraint closes the race left open by the handler's pre-check.
func (r *Repository) CreateBlockedURL(ctx context.Context, blocked *model.BlockedURL) error {
	query := `
		INSERT INTO blocked_urls (id, url, user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		blocked.ID,
		blocked.URL,
		blocked.UserID,
		blocked.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrURLBlocked
		}
		return fmt.Errorf("failed to create blocked url: %w", err)
	}

	return nil
}

// GetBlockedURLByID retrieves a blocked URL by its own ID.
func (r *Repository) GetBlockedURLByID(ctx context.Context, id string) (*model.BlockedURL, error) {
	query := `
		SELECT id, url, user_id, created_at
		FROM blocked_urls
		WHERE id = $1
	`

	blocked, err := r.scanBlockedURL(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlockedURLNotFound
		}
		return nil, fmt.Errorf("failed to get blocked url by ID: %w", err)
	}

	return blocked, nil
}

// GetBlockedURLByUserAndURL retrieves a blocked URL by its (url, user_id)
// pair. Used as the duplicate pre-check before creation.
func (r *Repository) GetBlockedURLByUserAndURL(ctx context.Context, userID, url string) (*model.BlockedURL, error) {
	query := `
		SELECT id, url, user_id, created_at
		FROM blocked_urls
		WHERE user_id = $1 AND url = $2
	`

	blocked, err := r.scanBlockedURL(r.pool.QueryRow(ctx, query, userID, url))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlockedURLNotFound
		}
		return nil, fmt.Errorf("failed to get blocked url by user and url: %w", err)
	}

	return blocked, nil
}

// ListBlockedURLsByUser retrieves a user's blocked URLs ordered by creation
// time descending.
func (r *Repository) ListBlockedURLsByUser(ctx context.Context, userID string) ([]*model.BlockedURL, error) {
	query := `
		SELECT id, url, user_id, created_at
		FROM blocked_urls
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked urls: %w", err)
	}
	defer rows.Close()

	urls := make([]*model.BlockedURL, 0)
	for rows.Next() {
		var blocked model.BlockedURL
		if err := rows.Scan(&blocked.ID, &blocked.URL, &blocked.UserID, &blocked.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blocked url: %w", err)
		}
		urls = append(urls, &blocked)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blocked urls: %w", err)
	}

	return urls, nil
}

// DeleteBlockedURL removes a blocked URL by its ID.
// Returns ErrBlockedURLNotFound if no row was deleted.
func (r *Repository) DeleteBlockedURL(ctx context.Context, id string) error {
	query := `
		DELETE FROM blocked_urls
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete blocked url: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBlockedURLNotFound
	}

	return nil
}

// scanBlockedURL scans a single blocked URL row.
func (r *Repository) scanBlockedURL(row pgx.Row) (*model.BlockedURL, error) {
	var blocked model.BlockedURL
	err := row.Scan(
		&blocked.ID,
		&blocked.URL,
		&blocked.UserID,
		&blocked.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &blocked, nil
}
