package middleware

import (
	"strings"

	"github.com/JasminHed/project-final-sub000/internal/dto"
	"github.com/JasminHed/project-final-sub000/internal/models"
	"github.com/JasminHed/project-final-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "current_user"

// Protected resolves the Authorization header to a user and stores it in the
// request context. The header carries the raw opaque token; a "Bearer "
// prefix is tolerated. Every failure mode looks the same to the client and
// carries loggedOut so it can force a re-login.
func Protected(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")

		user, err := authService.ResolveToken(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success:   false,
				Message:   "Please log in to continue",
				LoggedOut: true,
			})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the identity attached by Protected. It is nil on
// routes that bypass the gate.
func CurrentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals(currentUserKey).(*models.User); ok {
		return user
	}
	return nil
}
