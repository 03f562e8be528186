package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"mindwork/internal/model"
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrMoodEntryNotFound    = errors.New("mood entry not found")
	ErrDuplicateEmail       = errors.New("email already in use")
)

type CreateOrganizationParams struct {
	Name string
}

type UpdateOrganizationParams struct {
	Name string
}

type CreateUserParams struct {
	Name           string
	Email          string
	PasswordHash   string
	Role           model.Role
	OrganizationID uuid.UUID
}

type UpdateUserParams struct {
	Name           string
	Email          string
	PasswordHash   string
	Role           model.Role
	OrganizationID uuid.UUID
}

type CreateMoodEntryParams struct {
	UserID            uuid.UUID
	Mood              model.MoodState
	StressLevel       int16
	SleepHours        float64
	ScreenTimeMinutes int
	Notes             *string
	Source            model.DataSource
	Confidence        float64
}

// Repository is the persistence boundary. The postgres implementation
// backs the server; tests use the mock.
type Repository interface {
	// Organizations
	CreateOrganization(ctx context.Context, params CreateOrganizationParams) (model.Organization, error)
	ListOrganizations(ctx context.Context) ([]model.Organization, error)
	GetOrganizationByID(ctx context.Context, id uuid.UUID) (model.Organization, error)
	GetOrganizationByName(ctx context.Context, name string) (model.Organization, error)
	UpdateOrganization(ctx context.Context, id uuid.UUID, params UpdateOrganizationParams) error
	DeleteOrganization(ctx context.Context, id uuid.UUID) error
	OrganizationExists(ctx context.Context, id uuid.UUID) (bool, error)
	CountUsersByOrganization(ctx context.Context, organizationID uuid.UUID) (int, error)

	// Users
	CreateUser(ctx context.Context, params CreateUserParams) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ListUsersByOrganization(ctx context.Context, organizationID uuid.UUID) ([]model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, params UpdateUserParams) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)

	// Mood entries (append-only)
	CreateMoodEntry(ctx context.Context, params CreateMoodEntryParams) (model.MoodEntry, error)
	ListMoodEntries(ctx context.Context) ([]model.MoodEntry, error)
	ListMoodEntriesByUser(ctx context.Context, userID uuid.UUID) ([]model.MoodEntry, error)
	ListMoodEntriesByOrganization(ctx context.Context, organizationID uuid.UUID) ([]model.MoodEntry, error)
	GetMoodEntryByID(ctx context.Context, id uuid.UUID) (model.MoodEntry, error)

	// Coordination
	WithAdvisoryLock(ctx context.Context, key int64, fn func(ctx context.Context) error) error

	HealthCheck(ctx context.Context) error
}
