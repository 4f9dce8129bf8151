//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"
	"testing"
	"time"
)

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Count struct {
		BlockedURLs int64 `json:"blockedUrls"`
	} `json:"_count"`
}

type blockedURLResponse struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	UserID string `json:"userId"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// TestE2ESmoke walks the whole admin flow against a running server:
// login, create a user, block a URL, hit the duplicate conflict, unblock,
// and log out.
func TestE2ESmoke(t *testing.T) {
	baseURL := envOrDefault("URLFENCE_BASE_URL", "http://localhost:8080")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		t.Fatalf("ADMIN_EMAIL and ADMIN_PASSWORD are required for e2e tests")
	}

	client := newClient(t)

	// Unauthenticated dashboard access bounces to the login page
	assertRedirect(t, client, baseURL+"/dashboard", "/login")

	login(t, client, baseURL, adminEmail, adminPassword)

	// Authenticated login page access bounces to the dashboard
	assertRedirect(t, client, baseURL+"/login", "/dashboard")

	user := createUser(t, client, baseURL)
	blocked := blockURL(t, client, baseURL, user.ID, "https://facebook.com")

	// Blocking the same URL again conflicts
	status, body := doJSON(t, client, http.MethodPost,
		fmt.Sprintf("%s/api/users/%s/blocked-urls", baseURL, user.ID),
		map[string]any{"url": "https://facebook.com"})
	if status != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate block, got %d", status)
	}
	var conflict errorResponse
	if err := json.Unmarshal(body, &conflict); err != nil {
		t.Fatalf("decode conflict response: %v", err)
	}
	if conflict.Error != "URL já está bloqueada para este usuário" {
		t.Fatalf("unexpected conflict message: %s", conflict.Error)
	}

	// The listing reflects the block
	if count := fetchUserCount(t, client, baseURL, user.ID); count != 1 {
		t.Fatalf("expected blocked url count 1, got %d", count)
	}

	unblockURL(t, client, baseURL, user.ID, blocked.ID)

	if count := fetchUserCount(t, client, baseURL, user.ID); count != 0 {
		t.Fatalf("expected blocked url count 0 after unblock, got %d", count)
	}

	logout(t, client, baseURL)

	// Session is gone: the dashboard redirects to login again
	assertRedirect(t, client, baseURL+"/dashboard", "/login")
}

// TestE2EInvalidLogin verifies the login endpoint rejects bad credentials
// without setting a session.
func TestE2EInvalidLogin(t *testing.T) {
	baseURL := envOrDefault("URLFENCE_BASE_URL", "http://localhost:8080")

	client := newClient(t)

	status, body := doJSON(t, client, http.MethodPost, baseURL+"/api/auth/login",
		map[string]any{"email": "intruso@e2e.local", "password": "chute"})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}

	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error != "Credenciais inválidas" {
		t.Fatalf("unexpected error message: %s", payload.Error)
	}

	assertRedirect(t, client, baseURL+"/dashboard", "/login")
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}

	return &http.Client{
		Timeout: 15 * time.Second,
		Jar:     jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) {
	t.Helper()

	status, body := doJSON(t, client, http.MethodPost, baseURL+"/api/auth/login",
		map[string]any{"email": email, "password": password})
	if status != http.StatusOK {
		t.Fatalf("expected 200 from login, got %d: %s", status, body)
	}

	var payload messageResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if payload.Message != "Login realizado com sucesso" {
		t.Fatalf("unexpected login message: %s", payload.Message)
	}
}

func logout(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	status, body := doJSON(t, client, http.MethodPost, baseURL+"/api/auth/logout", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from logout, got %d: %s", status, body)
	}
}

func createUser(t *testing.T, client *http.Client, baseURL string) userResponse {
	t.Helper()

	email := fmt.Sprintf("e2e-%d@teste.local", time.Now().UnixNano())
	status, body := doJSON(t, client, http.MethodPost, baseURL+"/api/users",
		map[string]any{"email": email})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 from user create, got %d: %s", status, body)
	}

	var user userResponse
	if err := json.Unmarshal(body, &user); err != nil {
		t.Fatalf("decode user response: %v", err)
	}
	if user.ID == "" || user.Email != email {
		t.Fatalf("user create response missing fields: %s", body)
	}
	return user
}

func blockURL(t *testing.T, client *http.Client, baseURL, userID, url string) blockedURLResponse {
	t.Helper()

	status, body := doJSON(t, client, http.MethodPost,
		fmt.Sprintf("%s/api/users/%s/blocked-urls", baseURL, userID),
		map[string]any{"url": url})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 from block, got %d: %s", status, body)
	}

	var blocked blockedURLResponse
	if err := json.Unmarshal(body, &blocked); err != nil {
		t.Fatalf("decode blocked url response: %v", err)
	}
	if blocked.ID == "" || blocked.UserID != userID {
		t.Fatalf("block response missing fields: %s", body)
	}
	return blocked
}

func unblockURL(t *testing.T, client *http.Client, baseURL, userID, urlID string) {
	t.Helper()

	status, body := doJSON(t, client, http.MethodDelete,
		fmt.Sprintf("%s/api/users/%s/blocked-urls/%s", baseURL, userID, urlID), nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from unblock, got %d: %s", status, body)
	}

	var payload messageResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode unblock response: %v", err)
	}
	if payload.Message != "URL removida com sucesso" {
		t.Fatalf("unexpected unblock message: %s", payload.Message)
	}
}

func fetchUserCount(t *testing.T, client *http.Client, baseURL, userID string) int64 {
	t.Helper()

	status, body := doJSON(t, client, http.MethodGet, baseURL+"/api/users", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from user list, got %d", status)
	}

	var users []userResponse
	if err := json.Unmarshal(body, &users); err != nil {
		t.Fatalf("decode user list: %v", err)
	}
	for _, u := range users {
		if u.ID == userID {
			return u.Count.BlockedURLs
		}
	}
	t.Fatalf("user %s not present in listing", userID)
	return 0
}

func assertRedirect(t *testing.T, client *http.Client, url, wantLocation string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s: %v", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 from %s, got %d", url, resp.StatusCode)
	}
	if location := resp.Header.Get("Location"); !strings.HasPrefix(location, wantLocation) {
		t.Fatalf("expected Location %q from %s, got %q", wantLocation, url, location)
	}
}

func doJSON(t *testing.T, client *http.Client, method, url string, payload any) (int, []byte) {
	t.Helper()

	var buf io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		buf = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, buf)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	return resp.StatusCode, body
}
