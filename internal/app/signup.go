package app

import (
	"net/http"

	"sitebase/internal/auth"
	"sitebase/internal/form"
	"sitebase/internal/store"
)

// HandleSignupForm renders an empty signup form.
func (a *App) HandleSignupForm(w http.ResponseWriter, r *http.Request) {
	a.render(w, http.StatusOK, "signup.html", SignupPage{ViewCount: a.Views.Next()})
}

/*
HandleSignup runs the signup flow: decode, validate, uniqueness
pre-check, hash, insert, redirect. Every failure is terminal; nothing is
retried. Validation and duplicate-email outcomes re-render the form with
field-scoped messages and HTTP 200, because they are user-correctable
rather than server errors. The raw password is echoed nowhere and lives
only for the duration of this function.
*/
func (a *App) HandleSignup(w http.ResponseWriter, r *http.Request) {
	sub, err := form.FromRequest(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	a.Log.Info("signup attempt", "email", sub.Email)

	if errs := sub.Validate(); !errs.Valid() {
		a.Log.Warn("signup validation failed", "email", sub.Email, "fields", len(errs))
		a.render(w, http.StatusOK, "signup.html", SignupPage{
			ViewCount:            a.Views.Next(),
			EmailValue:           sub.Email,
			UsernameValue:        sub.Username,
			EmailError:           errs["email"],
			PasswordError:        errs["password"],
			ConfirmPasswordError: errs["confirm_password"],
			UsernameError:        errs["username"],
		})
		return
	}

	// Friendlier message for the common duplicate case. The UNIQUE
	// constraint still backstops the race between this check and the
	// insert below.
	exists, err := a.Users.EmailExists(r.Context(), sub.Email)
	if err != nil {
		a.Log.Error("checking email uniqueness", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if exists {
		a.Log.Warn("signup rejected, email already registered", "email", sub.Email)
		a.render(w, http.StatusOK, "signup.html", SignupPage{
			ViewCount:     a.Views.Next(),
			EmailValue:    sub.Email,
			UsernameValue: sub.Username,
			EmailError:    "A user with this email already exists.",
		})
		return
	}

	hash, err := auth.HashPassword(sub.Password)
	if err != nil {
		a.Log.Error("hashing password", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	user := &store.User{Email: sub.Email, HashedPassword: string(hash), Username: sub.Username}
	if err := a.Users.Create(r.Context(), user); err != nil {
		// A unique violation here means we lost the race to a
		// concurrent signup with the same email.
		a.Log.Error("creating user", "error", err, "unique_violation", store.IsUniqueViolation(err))
		http.Error(w, "Could not create account.", http.StatusInternalServerError)
		return
	}

	a.Log.Info("new user created", "email", sub.Email)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
