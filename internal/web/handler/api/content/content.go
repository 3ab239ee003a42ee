// Package content provides the JSON API the visual editor reads and writes
// page documents through.
package content

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/auth"
	"github.com/tablecraft/tablecraft/internal/cache"
	"github.com/tablecraft/tablecraft/internal/config"
	contentdb "github.com/tablecraft/tablecraft/internal/db/controller/content"
	"github.com/tablecraft/tablecraft/internal/web/handler"
)

// Path is the base path of the content API.
const Path = "/api/content"

// Service is the content API handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	db    *gorm.DB
	auth  *auth.Service
	cache *cache.ContentCache
}

// Handler is the content API handler.
var Handler = Service{}

// Init initializes the content API handler. The cache may be nil.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, contentCache *cache.ContentCache) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.auth = auth.NewService(db)
	s.cache = contentCache

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Post(handler.RootPath, s.Post)
	})

	return nil
}

// resolveTenant determines the tenant a request acts on and checks access.
// The tenant query parameter wins over the user's current tenant so super
// admins can edit any site.
func (s *Service) resolveTenant(c *fiber.Ctx) (uint64, error) {
	user := auth.SessionUser(c)

	tenantID := uint64(c.QueryInt("tenantId"))
	if tenantID == 0 {
		acting, err := s.auth.ActingTenant(user)
		if err != nil {
			return 0, err
		}
		tenantID = acting
	}

	if tenantID == 0 {
		return 0, ErrNoTenant
	}

	ok, err := s.auth.CanAccessTenant(user, tenantID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrTenantForbidden
	}

	return tenantID, nil
}

// Get returns the content document for the acting tenant's page, seeding the
// default document on first read.
func (s *Service) Get(c *fiber.Ctx) error {
	tenantID, err := s.resolveTenant(c)
	if err != nil {
		return s.tenantError(c, err)
	}

	page := c.Query("page", contentdb.DefaultPage)

	if data, hit := s.cache.Get(c.Context(), tenantID, page); hit {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(data)
	}

	doc, err := contentdb.GetOrSeed(s.db, tenantID, page, contentdb.DefaultDocument())
	if err != nil {
		log.Error().Err(err).Uint64("tenant_id", tenantID).Str("page", page).
			Msg("failed to load content document")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	s.cache.Set(c.Context(), tenantID, page, doc.Data)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(doc.Data)
}

// Post replaces the content document for the acting tenant's page. The last
// write wins; there is no merge or conflict detection.
func (s *Service) Post(c *fiber.Ctx) error {
	tenantID, err := s.resolveTenant(c)
	if err != nil {
		return s.tenantError(c, err)
	}

	page := c.Query("page", contentdb.DefaultPage)

	var updatedBy *uint64
	if user := auth.SessionUser(c); user != nil {
		updatedBy = &user.ID
	}

	doc, err := contentdb.Set(s.db, tenantID, page, c.Body(), updatedBy)
	if err != nil {
		if errors.Is(err, contentdb.ErrInvalidJSON) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		log.Error().Err(err).Uint64("tenant_id", tenantID).Str("page", page).
			Msg("failed to store content document")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	s.cache.Invalidate(c.Context(), tenantID, page)

	return c.JSON(fiber.Map{
		"success":   true,
		"updatedAt": doc.UpdatedAt,
	})
}

func (s *Service) tenantError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNoTenant):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrTenantForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("failed to resolve tenant")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
