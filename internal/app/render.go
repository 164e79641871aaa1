package app

import (
	"bytes"
	"fmt"
	"net/http"
)

/*
Page data passed to the templates. Each page has its own shape; the
signup and login pages additionally carry per-field error strings and,
for signup, the echoed email/username values. Passwords never appear in
any of these structs.
*/

type BasePage struct {
	ViewCount uint64
}

type SignupPage struct {
	ViewCount            uint64
	EmailValue           string
	UsernameValue        string
	EmailError           string
	PasswordError        string
	ConfirmPasswordError string
	UsernameError        string
}

type LoginPage struct {
	ViewCount     uint64
	EmailError    string
	PasswordError string
}

/*
render executes the named template into a buffer and writes it out with
the given status. Buffering first means a template failure can still
become a clean 500 with the render error text instead of a half-written
page.
*/
func (a *App) render(w http.ResponseWriter, status int, name string, data any) {
	tpl, ok := a.Templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Failed to render template. Error: template %q not found", name), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Failed to render template. Error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
