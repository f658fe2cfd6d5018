package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gudang/internal/models"
)

// respondError maps the service error taxonomy onto HTTP statuses. Unknown
// errors are treated as store/transport failures.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	case errors.Is(err, models.ErrSKUConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "SKU already exists",
		})
	case errors.Is(err, models.ErrEmptyExport):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No products to export",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}

// respondValidationError renders validator failures as a field-to-message
// map so the client can surface them next to the offending form fields.
func respondValidationError(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Validation failed",
		})
	}

	details := make(map[string]string)
	for _, e := range validationErrors {
		details[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Validation failed",
		"details": details,
	})
}
