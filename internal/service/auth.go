package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mindwork/internal/config"
	"mindwork/internal/model"
	"mindwork/internal/repository"
)

var (
	// ErrInvalidCredentials covers every login failure so callers cannot
	// distinguish unknown emails from wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Principal is the verified identity carried through a request.
type Principal struct {
	UserID         uuid.UUID
	Email          string
	Name           string
	Role           model.Role
	OrganizationID uuid.UUID
}

type tokenClaims struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies signed bearer tokens. Tokens are
// stateless: a deleted or demoted user keeps access until expiry.
type AuthService struct {
	repo repository.Repository
	cfg  config.AuthConfig
}

func NewAuthService(repo repository.Repository, cfg config.AuthConfig) *AuthService {
	return &AuthService{repo: repo, cfg: cfg}
}

// LoginResult is what a successful authentication returns to the client.
type LoginResult struct {
	Token          string     `json:"token"`
	UserID         uuid.UUID  `json:"userId"`
	OrganizationID uuid.UUID  `json:"organizationId"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Role           model.Role `json:"role"`
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult

	if email == "" || password == "" {
		return result, ErrInvalidCredentials
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return result, ErrInvalidCredentials
		}
		return result, fmt.Errorf("service: failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return result, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return result, err
	}

	return LoginResult{
		Token:          token,
		UserID:         user.ID,
		OrganizationID: user.OrganizationID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
	}, nil
}

// IssueToken signs an HS256 token carrying the user's identity claims.
func (s *AuthService) IssueToken(user model.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email:          user.Email,
		Name:           user.Name,
		Role:           string(user.Role),
		OrganizationID: user.OrganizationID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SigningKey))
	if err != nil {
		return "", fmt.Errorf("service: failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature, issuer, audience and expiry. Any failure
// collapses to ErrUnauthenticated.
func (s *AuthService) Verify(tokenString string) (Principal, error) {
	var principal Principal

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SigningKey), nil
	},
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return principal, ErrUnauthenticated
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return principal, ErrUnauthenticated
	}
	organizationID, err := uuid.Parse(claims.OrganizationID)
	if err != nil {
		return principal, ErrUnauthenticated
	}
	role, err := model.ParseRole(claims.Role)
	if err != nil {
		return principal, ErrUnauthenticated
	}

	return Principal{
		UserID:         userID,
		Email:          claims.Email,
		Name:           claims.Name,
		Role:           role,
		OrganizationID: organizationID,
	}, nil
}

// HashPassword wraps bcrypt with the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("service: failed to hash password: %w", err)
	}
	return string(hash), nil
}
