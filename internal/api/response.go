package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"mindwork/internal/service"
)

// validationProblem renders the 422 body: a map from field name to the
// list of messages for that field.
func validationProblem(c *fiber.Ctx, problems map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"errors": problems,
	})
}

func fieldProblem(c *fiber.Ctx, field, message string) error {
	return validationProblem(c, map[string][]string{field: {message}})
}

// notFound is an empty 404, matching lookups by unknown id.
func notFound(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNotFound)
}

func businessRuleViolation(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

func serverError(c *fiber.Ctx, err error) error {
	slog.Error("Request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

// domainError maps a domain-validation failure onto the error taxonomy:
// field violations become 422, business rules 400, anything else 500.
func domainError(c *fiber.Ctx, err error) error {
	var violation *service.FieldViolation
	if errors.As(err, &violation) {
		return fieldProblem(c, violation.Field, violation.Message)
	}
	if errors.Is(err, service.ErrOrganizationNotEmpty) {
		return businessRuleViolation(c, "organization still has users")
	}
	return serverError(c, err)
}
