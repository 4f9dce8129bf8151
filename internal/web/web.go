// Package web serves the embedded dashboard pages.
//
// The pages are static HTML/JS consumers of the JSON API: they render
// client-side, mutate local view state optimistically and re-fetch on
// failure. Access control happens in the gate middleware, not here.
package web

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Pages serves the dashboard UI.
type Pages struct{}

// New creates a new Pages handler.
func New() *Pages {
	return &Pages{}
}

// Login serves GET /login.
func (p *Pages) Login(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "static/login.html")
}

// Dashboard serves GET /dashboard.
func (p *Pages) Dashboard(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "static/dashboard.html")
}

// UserDetail serves GET /dashboard/users/{id}.
// The page reads the user id from its own path.
func (p *Pages) UserDetail(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "static/user.html")
}

// Assets serves GET /static/*: the stylesheets and scripts the pages
// reference. The pages carry no inline script or style, so they load
// under a default-src 'self' content security policy.
func (p *Pages) Assets() http.Handler {
	return http.FileServer(http.FS(staticFS))
}

func (p *Pages) serve(w http.ResponseWriter, r *http.Request, name string) {
	data, err := staticFS.ReadFile(name)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}
