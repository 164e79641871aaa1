package app

import (
	"net/http"

	"sitebase/internal/form"
)

// HandleLoginForm renders the login form.
func (a *App) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	a.render(w, http.StatusOK, "login.html", LoginPage{ViewCount: a.Views.Next()})
}

/*
HandleLogin accepts credentials and unconditionally redirects home.

This is an intentionally incomplete placeholder: no validation, no
credential lookup, no session. A real implementation would fetch the
user by email, verify the password with auth.CheckPassword, re-render
the form with a generic "invalid credentials" message on mismatch or
missing user, and establish a session on success. It shares the signup
handler's shape (submission in, response out) so both sit behind the
same middleware.
*/
func (a *App) HandleLogin(w http.ResponseWriter, r *http.Request) {
	sub, err := form.FromRequest(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	a.Log.Info("login attempt", "email", sub.Email)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
