package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mindwork/internal/model"
	"mindwork/internal/repository"
	"mindwork/internal/validator"
)

type organizationRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// ListOrganizations returns all organizations ordered by name.
func (h *Handler) ListOrganizations(c *fiber.Ctx) error {
	organizations, err := h.repo.ListOrganizations(c.Context())
	if err != nil {
		return serverError(c, err)
	}
	if organizations == nil {
		organizations = []model.Organization{}
	}
	return c.JSON(organizations)
}

// GetOrganization returns a single organization or an empty 404.
func (h *Handler) GetOrganization(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}

	organization, err := h.repo.GetOrganizationByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return notFound(c)
		}
		return serverError(c, err)
	}
	return c.JSON(organization)
}

// CreateOrganization creates an organization. Admin only.
func (h *Handler) CreateOrganization(c *fiber.Ctx) error {
	var req organizationRequest
	if err := c.BodyParser(&req); err != nil {
		return fieldProblem(c, "body", "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return validationProblem(c, validator.Translate(err))
	}

	organization, err := h.repo.CreateOrganization(c.Context(), repository.CreateOrganizationParams{
		Name: req.Name,
	})
	if err != nil {
		return serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(organization)
}

// UpdateOrganization renames an organization. Admin only.
func (h *Handler) UpdateOrganization(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}

	var req organizationRequest
	if err := c.BodyParser(&req); err != nil {
		return fieldProblem(c, "body", "invalid request body")
	}
	if err := h.validator.Validate(req); err != nil {
		return validationProblem(c, validator.Translate(err))
	}

	if err := h.repo.UpdateOrganization(c.Context(), id, repository.UpdateOrganizationParams{Name: req.Name}); err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return notFound(c)
		}
		return serverError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteOrganization removes an organization that has no users. Admin
// only; a populated organization is a 400, not a 422.
func (h *Handler) DeleteOrganization(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c)
	}

	if err := h.validation.ValidateOrganizationDeletable(c.Context(), id); err != nil {
		return domainError(c, err)
	}

	if err := h.repo.DeleteOrganization(c.Context(), id); err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return notFound(c)
		}
		return serverError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
