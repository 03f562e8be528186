package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mindwork/internal/config"
	"mindwork/internal/model"
	"mindwork/internal/repository"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		SigningKey: "test-signing-key",
		Issuer:     "mindwork.api",
		Audience:   "mindwork.client",
		TokenTTL:   time.Hour,
	}
}

func testUser(t *testing.T, password string) model.User {
	t.Helper()

	hash, err := HashPassword(password)
	require.NoError(t, err)

	return model.User{
		ID:             uuid.New(),
		Name:           "Alice",
		Email:          "alice@example.com",
		PasswordHash:   hash,
		Role:           model.RoleEmployee,
		OrganizationID: uuid.New(),
		CreatedAt:      time.Now().UTC(),
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	repo := new(repository.MockRepository)
	user := testUser(t, "Secret123!")
	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

	auth := NewAuthService(repo, testAuthConfig())

	result, err := auth.Authenticate(context.Background(), user.Email, "Secret123!")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.UserID)
	assert.Equal(t, user.OrganizationID, result.OrganizationID)
	assert.Equal(t, user.Email, result.Email)
	assert.Equal(t, user.Name, result.Name)
	assert.Equal(t, model.RoleEmployee, result.Role)

	repo.AssertExpectations(t)
}

func TestAuthenticateFailures(t *testing.T) {
	user := testUser(t, "Secret123!")

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(repo *repository.MockRepository)
	}{
		{
			name:     "wrong password",
			email:    user.Email,
			password: "WrongPass1!",
			setup: func(repo *repository.MockRepository) {
				repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "Secret123!",
			setup: func(repo *repository.MockRepository) {
				repo.On("GetUserByEmail", mock.Anything, "nobody@example.com").
					Return(model.User{}, repository.ErrUserNotFound)
			},
		},
		{
			name:     "empty email",
			email:    "",
			password: "Secret123!",
			setup:    func(repo *repository.MockRepository) {},
		},
		{
			name:     "empty password",
			email:    user.Email,
			password: "",
			setup:    func(repo *repository.MockRepository) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repository.MockRepository)
			tt.setup(repo)

			auth := NewAuthService(repo, testAuthConfig())

			_, err := auth.Authenticate(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	repo := new(repository.MockRepository)
	auth := NewAuthService(repo, testAuthConfig())

	user := testUser(t, "Secret123!")
	user.Role = model.RoleAdmin

	token, err := auth.IssueToken(user)
	require.NoError(t, err)

	principal, err := auth.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, user.Email, principal.Email)
	assert.Equal(t, user.Name, principal.Name)
	assert.Equal(t, model.RoleAdmin, principal.Role)
	assert.Equal(t, user.OrganizationID, principal.OrganizationID)
}

func TestVerifyRejections(t *testing.T) {
	repo := new(repository.MockRepository)
	user := testUser(t, "Secret123!")

	issue := func(cfg config.AuthConfig) string {
		token, err := NewAuthService(repo, cfg).IssueToken(user)
		require.NoError(t, err)
		return token
	}

	verifier := NewAuthService(repo, testAuthConfig())

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbled token", token: "not.a.token"},
		{name: "empty token", token: ""},
		{
			name: "expired token",
			token: issue(config.AuthConfig{
				SigningKey: "test-signing-key",
				Issuer:     "mindwork.api",
				Audience:   "mindwork.client",
				TokenTTL:   -time.Minute,
			}),
		},
		{
			name: "wrong signing key",
			token: issue(config.AuthConfig{
				SigningKey: "some-other-key",
				Issuer:     "mindwork.api",
				Audience:   "mindwork.client",
				TokenTTL:   time.Hour,
			}),
		},
		{
			name: "wrong issuer",
			token: issue(config.AuthConfig{
				SigningKey: "test-signing-key",
				Issuer:     "someone-else",
				Audience:   "mindwork.client",
				TokenTTL:   time.Hour,
			}),
		},
		{
			name: "wrong audience",
			token: issue(config.AuthConfig{
				SigningKey: "test-signing-key",
				Issuer:     "mindwork.api",
				Audience:   "other-client",
				TokenTTL:   time.Hour,
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token)
			assert.ErrorIs(t, err, ErrUnauthenticated)
		})
	}
}

func TestHashPasswordNeverPlaintext(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123!", hash)
	assert.NotContains(t, hash, "Secret123!")
}
