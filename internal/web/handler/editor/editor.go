// Package editor serves the visual content editor page. The page itself
// loads and saves documents through the content API.
package editor

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/auth"
	"github.com/tablecraft/tablecraft/internal/config"
	contentdb "github.com/tablecraft/tablecraft/internal/db/controller/content"
	"github.com/tablecraft/tablecraft/internal/db/controller/tenant"
	"github.com/tablecraft/tablecraft/internal/web/handler"
	"github.com/tablecraft/tablecraft/internal/web/navigation"
)

const (
	// Path is the path to the editor page.
	Path = handler.RootPath + "editor"

	// TemplateName is the name of the editor template.
	TemplateName = "editor/editor"
)

// Service is the editor handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	db   *gorm.DB
	auth *auth.Service
}

// Handler is the editor handler.
var Handler = Service{}

// Init initializes the editor handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.auth = auth.NewService(db)

	app.Get(Path, s.Get)

	return nil
}

// Get renders the editor page for the acting tenant.
func (s *Service) Get(c *fiber.Ctx) error {
	user := auth.SessionUser(c)

	tenantID, err := s.auth.ActingTenant(user)
	if err != nil || tenantID == 0 {
		log.Warn().Err(err).Msg("no acting tenant for editor")
		return c.Status(fiber.StatusBadRequest).SendString("no tenant selected")
	}

	t, err := tenant.Get(s.db, tenantID)
	if err != nil {
		log.Error().Err(err).Uint64("tenant_id", tenantID).Msg("failed to load tenant")
		return c.Status(fiber.StatusInternalServerError).SendString("internal server error")
	}

	nav := navigation.NewContext("Editor", "editor", "editor").
		WithTenant(t.Name).
		AddBreadcrumb("Home", "/dashboard", false).
		AddBreadcrumb("Editor", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Tenant":     t,
		"Page":       c.Query("page", contentdb.DefaultPage),
	}, handler.BaseLayout)
}
