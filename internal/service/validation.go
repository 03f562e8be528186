package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"mindwork/internal/repository"
)

// FieldViolation ties a broken referential-integrity rule to the request
// field that caused it, so handlers can render a 422 body.
type FieldViolation struct {
	Field   string
	Message string
}

func (v *FieldViolation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ErrOrganizationNotEmpty blocks deleting an organization that still has
// users. Business rule, not a validation problem: handlers render 400.
var ErrOrganizationNotEmpty = errors.New("organization still has users")

// ValidationService checks cross-entity rules before anything is written.
type ValidationService struct {
	repo repository.Repository
}

func NewValidationService(repo repository.Repository) *ValidationService {
	return &ValidationService{repo: repo}
}

// ValidateUserOrganization confirms the organization a user is being
// created in or moved to actually exists.
func (s *ValidationService) ValidateUserOrganization(ctx context.Context, organizationID uuid.UUID) error {
	exists, err := s.repo.OrganizationExists(ctx, organizationID)
	if err != nil {
		return fmt.Errorf("service: failed to check organization: %w", err)
	}
	if !exists {
		return &FieldViolation{
			Field:   "organization_id",
			Message: fmt.Sprintf("Organization %s does not exist.", organizationID),
		}
	}
	return nil
}

// ValidateMoodEntryUser confirms the reporting user exists.
func (s *ValidationService) ValidateMoodEntryUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("service: failed to check user: %w", err)
	}
	if !exists {
		return &FieldViolation{
			Field:   "user_id",
			Message: fmt.Sprintf("User %s does not exist.", userID),
		}
	}
	return nil
}

// ValidateOrganizationDeletable allows deletion only when no users remain.
func (s *ValidationService) ValidateOrganizationDeletable(ctx context.Context, organizationID uuid.UUID) error {
	count, err := s.repo.CountUsersByOrganization(ctx, organizationID)
	if err != nil {
		return fmt.Errorf("service: failed to count users: %w", err)
	}
	if count > 0 {
		return ErrOrganizationNotEmpty
	}
	return nil
}
