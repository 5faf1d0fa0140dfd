package middleware

import (
	"learnhub/backend/auth"
	"learnhub/backend/config"
	"learnhub/backend/models"
	"learnhub/backend/store"
	"learnhub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware verifies the bearer token and checks that it belongs to the
// currently published identity. Unauthenticated requests are redirected to
// the login route.
func AuthMiddleware(cfg *config.Config, sessions *store.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		current := sessions.Current()
		if current == nil || current.ID != userID {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		c.Locals("user", current)
		return c.Next()
	}
}

// RoleMiddleware gates a route on the active role. Authorization failures
// are not reported as errors; the client is silently sent back to the
// dashboard.
func RoleMiddleware(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		if !auth.HasAnyRole(user, roles) {
			return c.Redirect("/dashboard", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// CurrentUser returns the identity attached by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
