// Package httperr writes API error responses in the booking wire format.
package httperr

import (
	"github.com/gofiber/fiber/v2"
)

func RaiseError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message})
}

func RaiseBadRequestError(c *fiber.Ctx, message string) error {
	return RaiseError(c, fiber.StatusBadRequest, message)
}

func RaiseNotFoundError(c *fiber.Ctx, message string) error {
	return RaiseError(c, fiber.StatusNotFound, message)
}

func RaiseInternalServerError(c *fiber.Ctx) error {
	return RaiseError(c, fiber.StatusInternalServerError, "Server error")
}
