package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tablecraft/tablecraft/internal/db/models"
	"github.com/tablecraft/tablecraft/internal/web/session"
)

// localsUserKey is the fiber.Locals key holding the session user.
const localsUserKey = "session_user"

// SessionUser returns the authenticated user stored by LoadUser, or nil.
func SessionUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals(localsUserKey).(*models.User)
	if !ok {
		return nil
	}

	return user
}

// LoadUser reads the session cookie and, when valid, stores the user in
// fiber.Locals for downstream handlers. It never rejects the request.
func LoadUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session")
		if sessionID == "" {
			return c.Next()
		}

		sessData := new(session.Data)
		if err := sessData.Read(sessionID); err != nil {
			return c.Next()
		}

		if sessData.User.ID > 0 {
			c.Locals(localsUserKey, &sessData.User)
		}

		return c.Next()
	}
}

// RequireUser creates middleware that rejects unauthenticated requests with
// 401 for API paths and a login redirect for pages.
func RequireUser(loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if SessionUser(c) != nil {
			return c.Next()
		}

		if isAPIRequest(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		return c.Redirect(loginPath)
	}
}

// RequireAdmin creates middleware that requires an authenticated admin or
// super-admin user.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := SessionUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		if !IsAdmin(user) {
			log.Warn().Uint64("user_id", user.ID).Str("path", c.Path()).
				Msg("user lacks admin role")

			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}

		return c.Next()
	}
}

func isAPIRequest(c *fiber.Ctx) bool {
	return len(c.Path()) >= 5 && c.Path()[:5] == "/api/"
}
