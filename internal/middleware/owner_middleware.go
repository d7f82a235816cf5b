package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/snapfest/snapfest-backend/internal/models"
	"github.com/snapfest/snapfest-backend/internal/service"
)

// OwnerAuth guards the owner portal routes with the process-wide shared
// secret supplied in the X-Owner-Token header.
func OwnerAuth(access *service.AccessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("X-Owner-Token")
		if token == "" || !access.VerifyOwnerToken(token) {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("forbidden"))
		}
		return c.Next()
	}
}
