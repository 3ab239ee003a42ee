// Package articles provides the public JSON API serving a tenant's published
// articles to its marketing site.
package articles

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/config"
	articledb "github.com/tablecraft/tablecraft/internal/db/controller/article"
	"github.com/tablecraft/tablecraft/internal/db/controller/tenant"
	"github.com/tablecraft/tablecraft/internal/db/models"
	"github.com/tablecraft/tablecraft/internal/web/handler"
)

// Path is the base path of the public articles API.
const Path = "/api/articles"

// item is the article payload returned by the list endpoint. Drafts and
// private articles never appear here, so status is omitted.
type item struct {
	ID            uint64     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featuredImage,omitempty"`
	Author        string     `json:"author,omitempty"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

// Service is the articles API handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the articles API handler.
var Handler = Service{}

// Init initializes the articles API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.List)

	return nil
}

// List returns the published articles of the tenant resolved from the tenant
// query parameter (slug) or, when absent, the request host.
func (s *Service) List(c *fiber.Ctx) error {
	t, err := s.resolveTenant(c)
	if err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) || errors.Is(err, tenant.ErrNoDefaultTenant) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "tenant not found"})
		}

		log.Error().Err(err).Str("host", c.Hostname()).Msg("failed to resolve tenant")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	if !t.Settings.EnableNews {
		return c.JSON(fiber.Map{"items": []item{}})
	}

	rows, err := articledb.Published(s.db, t.ID, time.Now())
	if err != nil {
		log.Error().Err(err).Uint64("tenant_id", t.ID).Msg("failed to list articles")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	items := make([]item, 0, len(rows))
	for i := range rows {
		items = append(items, item{
			ID:            rows[i].ID,
			Title:         rows[i].Title,
			Content:       rows[i].Content,
			Excerpt:       rows[i].Excerpt,
			FeaturedImage: rows[i].FeaturedImage,
			Author:        rows[i].Author,
			PublishedAt:   rows[i].PublishedAt,
		})
	}

	return c.JSON(fiber.Map{"items": items})
}

func (s *Service) resolveTenant(c *fiber.Ctx) (*models.Tenant, error) {
	if slug := c.Query("tenant"); slug != "" {
		return tenant.GetBySlug(s.db, slug)
	}

	t, err := tenant.GetByHostname(s.db, c.Hostname())
	if err == nil {
		return t, nil
	}

	if errors.Is(err, tenant.ErrTenantNotFound) {
		return tenant.GetDefault(s.db)
	}

	return nil, err
}
