package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mindwork/internal/model"
	"mindwork/internal/repository"
)

const (
	seedOrganizationName = "MindWork HQ"
	seedAdminName        = "Admin"
	seedAdminEmail       = "admin@mindwork.com"
	seedAdminPassword    = "Admin123!"

	// Advisory lock key serializing seeding across instances.
	bootstrapLockKey int64 = 7234981
)

// BootstrapService seeds the default organization and admin account so a
// fresh deployment is immediately usable. Safe to run on every startup.
type BootstrapService struct {
	repo repository.Repository
}

func NewBootstrapService(repo repository.Repository) *BootstrapService {
	return &BootstrapService{repo: repo}
}

func (s *BootstrapService) Seed(ctx context.Context) error {
	return s.repo.WithAdvisoryLock(ctx, bootstrapLockKey, s.seed)
}

func (s *BootstrapService) seed(ctx context.Context) error {
	organization, err := s.repo.GetOrganizationByName(ctx, seedOrganizationName)
	if err != nil {
		if !errors.Is(err, repository.ErrOrganizationNotFound) {
			return fmt.Errorf("service: failed to look up seed organization: %w", err)
		}
		organization, err = s.repo.CreateOrganization(ctx, repository.CreateOrganizationParams{
			Name: seedOrganizationName,
		})
		if err != nil {
			return fmt.Errorf("service: failed to create seed organization: %w", err)
		}
		slog.Info("Created seed organization", "name", organization.Name, "id", organization.ID)
	}

	_, err = s.repo.GetUserByEmail(ctx, seedAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("service: failed to look up seed admin: %w", err)
	}

	passwordHash, err := HashPassword(seedAdminPassword)
	if err != nil {
		return err
	}

	admin, err := s.repo.CreateUser(ctx, repository.CreateUserParams{
		Name:           seedAdminName,
		Email:          seedAdminEmail,
		PasswordHash:   passwordHash,
		Role:           model.RoleAdmin,
		OrganizationID: organization.ID,
	})
	if err != nil {
		return fmt.Errorf("service: failed to create seed admin: %w", err)
	}
	slog.Info("Created seed admin user", "email", admin.Email, "id", admin.ID)

	return nil
}
