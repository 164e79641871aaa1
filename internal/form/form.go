// Package form decodes and validates the signup/login submission.
//
// The rules are declared on the AuthSubmission struct and evaluated by
// go-playground/validator; each field's violation maps to one fixed,
// human-readable message keyed by the form field name. Validation is a
// pure function of the submission, with no store or HTTP involvement.
package form

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// AuthSubmission carries one request's form fields. It is discarded when
// the request completes; the raw password is never persisted or echoed.
type AuthSubmission struct {
	Email           string `form:"email" validate:"email"`
	Password        string `form:"password" validate:"strongpassword"`
	ConfirmPassword string `form:"confirm_password" validate:"eqfield=Password"`
	Username        string `form:"username" validate:"min=3"`
}

// Errors maps a form field name to its validation message. A field with
// no violated rule has no entry; an empty map means the submission is
// valid. Multiple messages for one field are joined with ", ".
type Errors map[string]string

var messages = map[string]string{
	"email":            "Please enter a valid email.",
	"password":         "Password must be at least 8 characters long and include an uppercase letter, a lowercase letter, and a number.",
	"confirm_password": "The passwords do not match.",
	"username":         "Username must be at least 3 characters long.",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the form field name rather than the Go field.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("strongpassword", strongPassword); err != nil {
		panic(err)
	}
	return v
}

// strongPassword is an atomic rule: at least 8 characters with at least
// one lowercase letter, one uppercase letter and one digit. It fails as
// a whole, with no partial credit for individual sub-conditions.
func strongPassword(fl validator.FieldLevel) bool {
	p := fl.Field().String()
	var hasLower, hasUpper, hasDigit bool
	n := 0
	for _, r := range p {
		n++
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return n >= 8 && hasLower && hasUpper && hasDigit
}

// FromRequest decodes the url-encoded body into an AuthSubmission. A
// malformed body surfaces as the parse error; the caller responds 400.
func FromRequest(r *http.Request) (AuthSubmission, error) {
	if err := r.ParseForm(); err != nil {
		return AuthSubmission{}, err
	}
	return AuthSubmission{
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
		Username:        r.PostFormValue("username"),
	}, nil
}

// Validate runs every rule and accumulates the violations. All rules are
// independent: a failing rule never suppresses another field's message.
func (s AuthSubmission) Validate() Errors {
	err := validate.Struct(s)
	if err == nil {
		return Errors{}
	}
	out := Errors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Cannot happen for a struct value; nothing to map.
		return out
	}
	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := messages[field]
		if !ok {
			continue
		}
		if prev, dup := out[field]; dup {
			out[field] = prev + ", " + msg
		} else {
			out[field] = msg
		}
	}
	return out
}

// Valid reports whether no rule was violated.
func (e Errors) Valid() bool { return len(e) == 0 }
