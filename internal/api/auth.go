package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mindwork/internal/service"
	"mindwork/internal/validator"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for a signed bearer token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fieldProblem(c, "body", "invalid request body")
	}

	if err := h.validator.Validate(req); err != nil {
		return validationProblem(c, validator.Translate(err))
	}

	result, err := h.auth.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid credentials",
			})
		}
		return serverError(c, err)
	}

	return c.JSON(result)
}
