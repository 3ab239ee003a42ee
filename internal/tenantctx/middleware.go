package tenantctx

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/web/session"
)

// Middleware resolves the tenant context for each request and writes it into
// the database session before the handler chain runs, clearing it afterwards.
//
// Failures are logged and swallowed: the request proceeds without tenant
// context rather than failing closed, matching the RLS policies' own
// fallback behavior.
func Middleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessData := new(session.Data)
		_ = sessData.Read(c.Cookies("session"))

		var tc Context
		if sessData.User.ID > 0 {
			tc = Resolve(&sessData.User, c.Get(HeaderTenantID), c.Query(QueryTenant))
		} else {
			tc = Resolve(nil, c.Get(HeaderTenantID), c.Query(QueryTenant))
		}

		if err := Set(db, tc); err != nil {
			log.Error().Err(err).
				Str("tenant_id", tc.TenantID).
				Str("user_id", tc.UserID).
				Msg("failed to set tenant context, proceeding without it")
		}

		chainErr := c.Next()

		if err := Clear(db); err != nil {
			log.Error().Err(err).Msg("failed to clear tenant context")
		}

		return chainErr
	}
}
