// Package lang provides the language switcher endpoint for visitor-facing
// pages.
package lang

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tablecraft/tablecraft/internal/config"
	"github.com/tablecraft/tablecraft/internal/i18n"
	"github.com/tablecraft/tablecraft/internal/web/handler"
)

// Path is the path of the language switcher.
const Path = "/lang"

// Service is the language switcher handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the language switcher handler.
var Handler = Service{}

// Init initializes the language switcher handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config) error {
	if app == nil || cfg == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg

	app.Get(Path, s.Switch)

	return nil
}

// Switch stores the chosen language in a one year cookie and redirects back
// to the referring page. Unknown language codes fall back to Japanese.
func (s *Service) Switch(c *fiber.Ctx) error {
	code := c.Query("code")
	if !i18n.Supported(code) {
		code = string(i18n.LangJA)
	}

	c.Cookie(&fiber.Cookie{
		Name:     i18n.CookieName,
		Value:    code,
		MaxAge:   i18n.CookieMaxAge,
		HTTPOnly: false,
		SameSite: "Lax",
	})

	target := c.Get(fiber.HeaderReferer)
	if target == "" {
		target = handler.RootPath
	}

	return c.Redirect(target)
}
