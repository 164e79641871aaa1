package form

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() AuthSubmission {
	return AuthSubmission{
		Email:           "new@example.com",
		Password:        "Abcdefg1",
		ConfirmPassword: "Abcdefg1",
		Username:        "alice",
	}
}

func TestValidSubmissionPasses(t *testing.T) {
	errs := validSubmission().Validate()
	assert.True(t, errs.Valid())
	assert.Empty(t, errs)
}

func TestPasswordRule(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"meets all requirements", "Abcdefg1", true},
		{"longer still valid", "Str0ngPassword", true},
		{"no uppercase", "abcdefg1", false},
		{"no lowercase", "ABCDEFG1", false},
		{"no digit", "Abcdefgh", false},
		{"too short", "Abc123", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			sub.Password = tt.password
			sub.ConfirmPassword = tt.password
			errs := sub.Validate()
			if tt.valid {
				assert.NotContains(t, errs, "password")
			} else {
				assert.Equal(t,
					"Password must be at least 8 characters long and include an uppercase letter, a lowercase letter, and a number.",
					errs["password"])
			}
		})
	}
}

func TestEmailRule(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"new@example.com", true},
		{"user@site.org", true},
		{"", false},
		{"plainaddress", false},
		{"missing-domain@", false},
	}
	for _, tt := range tests {
		sub := validSubmission()
		sub.Email = tt.email
		errs := sub.Validate()
		if tt.valid {
			assert.NotContains(t, errs, "email", "email %q", tt.email)
		} else {
			assert.Equal(t, "Please enter a valid email.", errs["email"], "email %q", tt.email)
		}
	}
}

func TestConfirmPasswordMustMatch(t *testing.T) {
	sub := validSubmission()
	sub.ConfirmPassword = "Different1"
	errs := sub.Validate()
	assert.Equal(t, "The passwords do not match.", errs["confirm_password"])

	sub.ConfirmPassword = sub.Password
	assert.True(t, sub.Validate().Valid())
}

func TestUsernameLengthCountsRunes(t *testing.T) {
	tests := []struct {
		username string
		valid    bool
	}{
		{"alice", true},
		{"bob", true},
		{"al", false},
		{"", false},
		// three runes but nine bytes; rune counting accepts it
		{"日本語", true},
		// two runes, six bytes
		{"日本", false},
	}
	for _, tt := range tests {
		sub := validSubmission()
		sub.Username = tt.username
		errs := sub.Validate()
		if tt.valid {
			assert.NotContains(t, errs, "username", "username %q", tt.username)
		} else {
			assert.Equal(t, "Username must be at least 3 characters long.", errs["username"], "username %q", tt.username)
		}
	}
}

func TestAllViolationsReported(t *testing.T) {
	sub := AuthSubmission{
		Email:           "not-an-email",
		Password:        "weak",
		ConfirmPassword: "other",
		Username:        "x",
	}
	errs := sub.Validate()
	assert.False(t, errs.Valid())
	assert.Len(t, errs, 4)
	for _, field := range []string{"email", "password", "confirm_password", "username"} {
		assert.NotEmpty(t, errs[field], "expected a message for %s", field)
	}
}

func TestFromRequest(t *testing.T) {
	body := url.Values{
		"email":            {"new@example.com"},
		"password":         {"Abcdefg1"},
		"confirm_password": {"Abcdefg1"},
		"username":         {"alice"},
	}
	r, err := http.NewRequest(http.MethodPost, "/signup", strings.NewReader(body.Encode()))
	require.NoError(t, err)
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	sub, err := FromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", sub.Email)
	assert.Equal(t, "Abcdefg1", sub.Password)
	assert.Equal(t, "Abcdefg1", sub.ConfirmPassword)
	assert.Equal(t, "alice", sub.Username)
}
