package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordPayload struct {
	Password string `validate:"required,password_strength"`
}

func TestPasswordStrength(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "strong password", password: "Admin123!", valid: true},
		{name: "minimal strong password", password: "Abcdefg1", valid: true},
		{name: "too short", password: "Ab1", valid: false},
		{name: "no uppercase", password: "admin123!", valid: false},
		{name: "no lowercase", password: "ADMIN123!", valid: false},
		{name: "no digit", password: "Adminabc!", valid: false},
		{name: "empty", password: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(passwordPayload{Password: tt.password})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

type signupPayload struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

func TestTranslate(t *testing.T) {
	v := New()

	err := v.Validate(signupPayload{Email: "not-an-email"})
	require.Error(t, err)

	problems := Translate(err)
	assert.Contains(t, problems, "Name")
	assert.Contains(t, problems, "Email")
	assert.NotEmpty(t, problems["Name"])
	assert.NotEmpty(t, problems["Email"])
}
