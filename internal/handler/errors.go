package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/snapfest/snapfest-backend/internal/models"
)

// statusForError maps the core error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is a storage or programming failure and
// surfaces as 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrUploadNotFound),
		errors.Is(err, models.ErrBlobNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, models.ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
