package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"mindwork/internal/model"
)

// MockRepository is a testify mock of Repository for handler and
// service tests.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateOrganization(ctx context.Context, params CreateOrganizationParams) (model.Organization, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Organization), args.Error(1)
}

func (m *MockRepository) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Organization), args.Error(1)
}

func (m *MockRepository) GetOrganizationByID(ctx context.Context, id uuid.UUID) (model.Organization, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Organization), args.Error(1)
}

func (m *MockRepository) GetOrganizationByName(ctx context.Context, name string) (model.Organization, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Organization), args.Error(1)
}

func (m *MockRepository) UpdateOrganization(ctx context.Context, id uuid.UUID, params UpdateOrganizationParams) error {
	args := m.Called(ctx, id, params)
	return args.Error(0)
}

func (m *MockRepository) DeleteOrganization(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) OrganizationExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CountUsersByOrganization(ctx context.Context, organizationID uuid.UUID) (int, error) {
	args := m.Called(ctx, organizationID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CreateUser(ctx context.Context, params CreateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockRepository) ListUsersByOrganization(ctx context.Context, organizationID uuid.UUID) ([]model.User, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockRepository) UpdateUser(ctx context.Context, id uuid.UUID, params UpdateUserParams) error {
	args := m.Called(ctx, id, params)
	return args.Error(0)
}

func (m *MockRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CreateMoodEntry(ctx context.Context, params CreateMoodEntryParams) (model.MoodEntry, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.MoodEntry), args.Error(1)
}

func (m *MockRepository) ListMoodEntries(ctx context.Context) ([]model.MoodEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MoodEntry), args.Error(1)
}

func (m *MockRepository) ListMoodEntriesByUser(ctx context.Context, userID uuid.UUID) ([]model.MoodEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MoodEntry), args.Error(1)
}

func (m *MockRepository) ListMoodEntriesByOrganization(ctx context.Context, organizationID uuid.UUID) ([]model.MoodEntry, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MoodEntry), args.Error(1)
}

func (m *MockRepository) GetMoodEntryByID(ctx context.Context, id uuid.UUID) (model.MoodEntry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.MoodEntry), args.Error(1)
}

func (m *MockRepository) WithAdvisoryLock(ctx context.Context, key int64, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, key, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

func (m *MockRepository) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
