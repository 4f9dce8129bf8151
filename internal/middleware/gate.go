package middleware

import (
	"net/http"
	"strings"

	"github.com/urlfence/urlfence/internal/auth"
)

// Gate paths. The dashboard lives under ProtectedPrefix; LoginPath is the
// only page an unauthenticated client may see.
const (
	LoginPath       = "/login"
	ProtectedPrefix = "/dashboard"
)

// Gate intercepts every request before routing and enforces the
// cookie-derived authenticated/unauthenticated states:
//
//   - protected path without the auth cookie: redirect to the login page,
//     terminal - the request never reaches a handler
//   - login page with the auth cookie: redirect to the dashboard root
//   - anything else passes through unchanged
//
// State is derived per request from cookie presence alone; there is no
// server-side session to consult.
func Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authenticated := auth.IsAuthenticated(r)

		if strings.HasPrefix(r.URL.Path, ProtectedPrefix) && !authenticated {
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}

		if r.URL.Path == LoginPath && authenticated {
			http.Redirect(w, r, ProtectedPrefix, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
