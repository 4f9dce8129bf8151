// Command seed loads sample users and blocked URLs for local development.
// It is idempotent: existing rows are left in place.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/urlfence/urlfence/internal/config"
	"github.com/urlfence/urlfence/internal/model"
	"github.com/urlfence/urlfence/internal/repository"
)

var sampleData = map[string][]string{
	"joao@exemplo.com": {
		"https://facebook.com",
		"https://instagram.com",
		"https://twitter.com",
	},
	"maria@exemplo.com": {
		"https://youtube.com",
		"https://tiktok.com",
	},
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	for email, urls := range sampleData {
		user, err := ensureUser(ctx, repo, email)
		if err != nil {
			logger.Error("seed user failed", "email", email, "error", err)
			os.Exit(1)
		}

		for _, url := range urls {
			if err := ensureBlockedURL(ctx, repo, user.ID, url); err != nil {
				logger.Error("seed blocked url failed", "url", url, "error", err)
				os.Exit(1)
			}
		}

		logger.Info("seeded user", "email", email, "user_id", user.ID, "urls", len(urls))
	}

	logger.Info("seed completed")
}

func ensureUser(ctx context.Context, repo *repository.Repository, email string) (*model.User, error) {
	existing, err := repo.GetUserByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user := &model.User{
		ID:        ulid.Make().String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func ensureBlockedURL(ctx context.Context, repo *repository.Repository, userID, url string) error {
	blocked := &model.BlockedURL{
		ID:        ulid.Make().String(),
		URL:       url,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	err := repo.CreateBlockedURL(ctx, blocked)
	if errors.Is(err, repository.ErrURLBlocked) {
		return nil
	}
	return err
}
