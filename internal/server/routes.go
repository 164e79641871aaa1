// Package server wires the HTTP routes, middleware and template loading
// around the application handlers.
package server

import (
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"sitebase/internal/app"
)

// New builds the full HTTP handler: method+path routes, static file
// service, a 404 fallback for everything unmatched, wrapped in the
// recovery and request-logging middleware.
func New(a *app.App, staticDir string, log *slog.Logger) http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/", a.HandleHome)
	router.HandlerFunc(http.MethodGet, "/about", a.HandleAbout)
	router.HandlerFunc(http.MethodGet, "/contact", a.HandleContact)
	router.HandlerFunc(http.MethodGet, "/login", a.HandleLoginForm)
	router.HandlerFunc(http.MethodPost, "/login", a.HandleLogin)
	router.HandlerFunc(http.MethodGet, "/signup", a.HandleSignupForm)
	router.HandlerFunc(http.MethodPost, "/signup", a.HandleSignup)
	router.HandlerFunc(http.MethodGet, "/servererror", a.HandleServerError)

	router.ServeFiles("/static/*filepath", http.Dir(staticDir))

	// Anything unmatched, including wrong-method requests, falls
	// through to the 404 page.
	router.HandleMethodNotAllowed = false
	router.NotFound = http.HandlerFunc(a.HandleNotFound)

	return LogRequest(log, WithRecovery(a, router))
}
