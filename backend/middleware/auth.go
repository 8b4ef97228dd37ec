package middleware

import (
	"github.com/gofiber/fiber/v2"

	"studytracker/backend/config"
	"studytracker/backend/utils"
)

// AuthMiddleware verifies the session cookie and stashes the identity in
// locals. Browser flows expect a redirect to the login page, not a 401.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, username, err := utils.ExtractSession(c, cfg)
		if err != nil {
			return c.Redirect("/login")
		}

		c.Locals("user_id", userID)
		c.Locals("username", username)
		return c.Next()
	}
}

// SessionUserID returns the authenticated user id set by AuthMiddleware.
func SessionUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

// SessionUsername returns the authenticated username set by AuthMiddleware.
func SessionUsername(c *fiber.Ctx) string {
	name, _ := c.Locals("username").(string)
	return name
}
