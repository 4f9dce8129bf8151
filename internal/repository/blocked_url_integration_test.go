//go:build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/urlfence/urlfence/internal/testutil"
)

// ============================================================================
// Blocked URL Repository Integration Tests
// ============================================================================

func TestIntegrationBlockedURLRepository_CreateBlockedURL(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("block"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	blocked := testutil.NewTestBlockedURL(t, user.ID, "https://facebook.com")
	if err := repo.CreateBlockedURL(ctx, blocked); err != nil {
		t.Fatalf("CreateBlockedURL failed: %v", err)
	}

	retrieved, err := repo.GetBlockedURLByID(ctx, blocked.ID)
	if err != nil {
		t.Fatalf("GetBlockedURLByID failed: %v", err)
	}

	if retrieved.URL != blocked.URL {
		t.Errorf("URL mismatch: got %q, want %q", retrieved.URL, blocked.URL)
	}
	if retrieved.UserID != user.ID {
		t.Errorf("UserID mismatch: got %q, want %q", retrieved.UserID, user.ID)
	}
}

func TestIntegrationBlockedURLRepository_CreateBlockedURL_Duplicate(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("dup-url"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	first := testutil.NewTestBlockedURL(t, user.ID, "https://twitter.com")
	if err := repo.CreateBlockedURL(ctx, first); err != nil {
		t.Fatalf("CreateBlockedURL (first) failed: %v", err)
	}

	second := testutil.NewTestBlockedURL(t, user.ID, "https://twitter.com")
	second.ID = testutil.UniqueID("blocked") // Different ID, same (url, user_id)

	err := repo.CreateBlockedURL(ctx, second)
	if !errors.Is(err, ErrURLBlocked) {
		t.Errorf("Expected ErrURLBlocked, got: %v", err)
	}
}

func TestIntegrationBlockedURLRepository_SameURLDistinctUsers(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	userA := testutil.NewTestUser(t, testutil.UniqueEmail("share-a"))
	userA.ID = testutil.UniqueID("user-a")
	userB := testutil.NewTestUser(t, testutil.UniqueEmail("share-b"))
	userB.ID = testutil.UniqueID("user-b")

	if err := repo.CreateUser(ctx, userA); err != nil {
		t.Fatalf("CreateUser (a) failed: %v", err)
	}
	if err := repo.CreateUser(ctx, userB); err != nil {
		t.Fatalf("CreateUser (b) failed: %v", err)
	}

	// The unique constraint is scoped per user: the same URL may be
	// blocked independently by each.
	blockedA := testutil.NewTestBlockedURL(t, userA.ID, "https://youtube.com")
	blockedA.ID = testutil.UniqueID("blocked-a")
	if err := repo.CreateBlockedURL(ctx, blockedA); err != nil {
		t.Fatalf("CreateBlockedURL (a) failed: %v", err)
	}

	blockedB := testutil.NewTestBlockedURL(t, userB.ID, "https://youtube.com")
	blockedB.ID = testutil.UniqueID("blocked-b")
	if err := repo.CreateBlockedURL(ctx, blockedB); err != nil {
		t.Errorf("CreateBlockedURL (b) failed: %v", err)
	}
}

func TestIntegrationBlockedURLRepository_GetByUserAndURL(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("pair"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	blocked := testutil.NewTestBlockedURL(t, user.ID, "https://tiktok.com")
	if err := repo.CreateBlockedURL(ctx, blocked); err != nil {
		t.Fatalf("CreateBlockedURL failed: %v", err)
	}

	retrieved, err := repo.GetBlockedURLByUserAndURL(ctx, user.ID, "https://tiktok.com")
	if err != nil {
		t.Fatalf("GetBlockedURLByUserAndURL failed: %v", err)
	}
	if retrieved.ID != blocked.ID {
		t.Errorf("ID mismatch: got %q, want %q", retrieved.ID, blocked.ID)
	}

	_, err = repo.GetBlockedURLByUserAndURL(ctx, user.ID, "https://unblocked.example.com")
	if !errors.Is(err, ErrBlockedURLNotFound) {
		t.Errorf("Expected ErrBlockedURLNotFound, got: %v", err)
	}
}

func TestIntegrationBlockedURLRepository_ListByUser_NewestFirst(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("list"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	base := time.Now().UTC().Add(-1 * time.Minute)
	urls := []string{"https://one.example.com", "https://two.example.com", "https://three.example.com"}
	var ids []string
	for i, url := range urls {
		blocked := testutil.NewTestBlockedURL(t, user.ID, url)
		blocked.ID = testutil.UniqueID("blocked")
		blocked.CreatedAt = base.Add(time.Duration(i) * time.Second)
		if err := repo.CreateBlockedURL(ctx, blocked); err != nil {
			t.Fatalf("CreateBlockedURL failed: %v", err)
		}
		ids = append(ids, blocked.ID)
	}

	listed, err := repo.ListBlockedURLsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListBlockedURLsByUser failed: %v", err)
	}

	if len(listed) != 3 {
		t.Fatalf("Expected 3 blocked urls, got %d", len(listed))
	}
	for i := 0; i < 3; i++ {
		want := ids[len(ids)-1-i]
		if listed[i].ID != want {
			t.Errorf("listed[%d].ID = %q, want %q", i, listed[i].ID, want)
		}
	}
}

func TestIntegrationBlockedURLRepository_ListByUser_Empty(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("empty"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	listed, err := repo.ListBlockedURLsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListBlockedURLsByUser failed: %v", err)
	}
	if listed == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(listed) != 0 {
		t.Errorf("Expected 0 blocked urls, got %d", len(listed))
	}
}

func TestIntegrationBlockedURLRepository_DeleteBlockedURL(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("delete"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	blocked := testutil.NewTestBlockedURL(t, user.ID, "https://instagram.com")
	if err := repo.CreateBlockedURL(ctx, blocked); err != nil {
		t.Fatalf("CreateBlockedURL failed: %v", err)
	}

	if err := repo.DeleteBlockedURL(ctx, blocked.ID); err != nil {
		t.Fatalf("DeleteBlockedURL failed: %v", err)
	}

	_, err := repo.GetBlockedURLByID(ctx, blocked.ID)
	if !errors.Is(err, ErrBlockedURLNotFound) {
		t.Errorf("Expected ErrBlockedURLNotFound after delete, got: %v", err)
	}
}

func TestIntegrationBlockedURLRepository_DeleteBlockedURL_NotFound(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	err := repo.DeleteBlockedURL(ctx, "nonexistent-id")
	if !errors.Is(err, ErrBlockedURLNotFound) {
		t.Errorf("Expected ErrBlockedURLNotFound, got: %v", err)
	}
}

func TestIntegrationBlockedURLRepository_CascadeOnUserDelete(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("cascade"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	blocked := testutil.NewTestBlockedURL(t, user.ID, "https://cascade.example.com")
	if err := repo.CreateBlockedURL(ctx, blocked); err != nil {
		t.Fatalf("CreateBlockedURL failed: %v", err)
	}

	// No user delete endpoint exists; the FK still guarantees no orphans
	// if rows are removed administratively.
	if _, err := repo.Pool().Exec(ctx, "DELETE FROM users WHERE id = $1", user.ID); err != nil {
		t.Fatalf("delete user row: %v", err)
	}

	_, err := repo.GetBlockedURLByID(ctx, blocked.ID)
	if !errors.Is(err, ErrBlockedURLNotFound) {
		t.Errorf("Expected ErrBlockedURLNotFound after cascade, got: %v", err)
	}
}
