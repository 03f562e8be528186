package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mindwork/internal/model"
	"mindwork/internal/repository"
	"mindwork/internal/service"
	"mindwork/internal/validator"
)

type createUserRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,password_strength"`
	OrganizationID string `json:"organization_id" validate:"required,uuid"`
}

// updateUserRequest deliberately carries no role: roles are assigned at
// signup and never change through this endpoint, so an authenticated
// user cannot promote themself.
type updateUserRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"omitempty,password_strength"`
	OrganizationID string `json:"organization_id" validate:"required,uuid"`
}

// ListUsers returns all users. Password hashes never serialize.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.repo.ListUsers(c.Context())
	if err != nil {
		return serverError(c, err)
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(users)
}

// ListUsersByOrganization returns the users belonging to one organization.
func (h *Handler) ListUsersByOrganization(c *fiber.Ctx) error {
	organizationID, err := uuid.Parse(c.Params("organizationId"))
	if err != nil {
		return notFound(c)
	}

	users, err := h.repo.ListUsersByOrganization(c.Context(), organizationID)
	if err != nil {
		return serverError(c, err)
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(users)
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}

	user, err := h.repo.GetUserByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return notFound(c)
		}
		return serverError(c, err)
	}
	return c.JSON(user)
}

// CreateUser registers a user. Public: this is the signup endpoint, so
// the role is always forced to Employee regardless of the payload.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fieldProblem(c, "body", "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return validationProblem(c, validator.Translate(err))
	}

	organizationID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return fieldProblem(c, "organization_id", "must be a valid UUID")
	}

	if err := h.validation.ValidateUserOrganization(c.Context(), organizationID); err != nil {
		return domainError(c, err)
	}

	passwordHash, err := service.HashPassword(req.Password)
	if err != nil {
		return serverError(c, err)
	}

	user, err := h.repo.CreateUser(c.Context(), repository.CreateUserParams{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   passwordHash,
		Role:           model.RoleEmployee,
		OrganizationID: organizationID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return fieldProblem(c, "email", "is already in use")
		}
		return serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser replaces a user's mutable fields, revalidating the target
// organization. The password keeps its current value when omitted; the
// role always does.
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fieldProblem(c, "body", "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return validationProblem(c, validator.Translate(err))
	}

	organizationID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return fieldProblem(c, "organization_id", "must be a valid UUID")
	}

	current, err := h.repo.GetUserByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return notFound(c)
		}
		return serverError(c, err)
	}

	if err := h.validation.ValidateUserOrganization(c.Context(), organizationID); err != nil {
		return domainError(c, err)
	}

	passwordHash := current.PasswordHash
	if req.Password != "" {
		passwordHash, err = service.HashPassword(req.Password)
		if err != nil {
			return serverError(c, err)
		}
	}

	if err := h.repo.UpdateUser(c.Context(), id, repository.UpdateUserParams{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   passwordHash,
		Role:           current.Role,
		OrganizationID: organizationID,
	}); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return notFound(c)
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return fieldProblem(c, "email", "is already in use")
		}
		return serverError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}

	if err := h.repo.DeleteUser(c.Context(), id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return notFound(c)
		}
		return serverError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
