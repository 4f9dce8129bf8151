package auth

import (
	"net/http"
	"time"
)

// Cookie contract for the admin session flag. There is no server-side
// session store: authenticated/unauthenticated state is derived per
// request from this cookie alone.
const (
	// CookieName is the auth cookie's name.
	CookieName = "authenticated"

	// CookieValue is the literal the cookie must hold to count as
	// authenticated.
	CookieValue = "true"

	// CookieMaxAge is the cookie lifetime. The only expiry mechanism is
	// the cookie's own max-age.
	CookieMaxAge = 7 * 24 * time.Hour
)

// SetSessionCookie marks the response's client as authenticated.
// HttpOnly and SameSite=Lax always; Secure only when the deployment
// terminates TLS (production).
func SetSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    CookieValue,
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the auth cookie: empty value, zero max-age.
// Logout has no server state to invalidate beyond this.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// IsAuthenticated reports whether the request carries the auth cookie with
// the expected literal value.
func IsAuthenticated(r *http.Request) bool {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return cookie.Value == CookieValue
}
