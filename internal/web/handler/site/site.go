// Package site renders the public marketing page of a tenant, resolved from
// the request host.
package site

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/config"
	articledb "github.com/tablecraft/tablecraft/internal/db/controller/article"
	contentdb "github.com/tablecraft/tablecraft/internal/db/controller/content"
	"github.com/tablecraft/tablecraft/internal/db/controller/tenant"
	"github.com/tablecraft/tablecraft/internal/db/models"
	"github.com/tablecraft/tablecraft/internal/i18n"
	"github.com/tablecraft/tablecraft/internal/web/handler"
)

const (
	// TemplateName is the name of the marketing page template.
	TemplateName = "site/home"

	// maxNewsItems caps the news section on the page.
	maxNewsItems = 5
)

// Service is the site handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the site handler.
var Handler = Service{}

// Init initializes the site handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(handler.RootPath, s.Get)

	return nil
}

// Get renders the marketing page of the tenant owning the request host,
// falling back to the default tenant for unknown hosts.
func (s *Service) Get(c *fiber.Ctx) error {
	t, err := tenant.GetByHostname(s.db, c.Hostname())
	if errors.Is(err, tenant.ErrTenantNotFound) {
		t, err = tenant.GetDefault(s.db)
	}

	if err != nil {
		if errors.Is(err, tenant.ErrNoDefaultTenant) {
			return c.Status(fiber.StatusNotFound).SendString("site not found")
		}

		log.Error().Err(err).Str("host", c.Hostname()).Msg("failed to resolve tenant")
		return c.Status(fiber.StatusInternalServerError).SendString("internal server error")
	}

	if t.Status != models.TenantStatusActive {
		return c.Status(fiber.StatusNotFound).SendString("site not found")
	}

	doc, err := contentdb.GetOrSeed(s.db, t.ID, contentdb.DefaultPage, contentdb.DefaultDocument())
	if err != nil {
		log.Error().Err(err).Uint64("tenant_id", t.ID).Msg("failed to load content document")
		return c.Status(fiber.StatusInternalServerError).SendString("internal server error")
	}

	var content map[string]any
	if err = json.Unmarshal(doc.Data, &content); err != nil {
		log.Error().Err(err).Uint64("tenant_id", t.ID).Msg("stored content document is not an object")
		content = map[string]any{}
	}

	var articles []models.Article
	if t.Settings.EnableNews {
		articles, err = articledb.Published(s.db, t.ID, time.Now())
		if err != nil {
			log.Error().Err(err).Uint64("tenant_id", t.ID).Msg("failed to load articles")
			articles = nil
		}

		if len(articles) > maxNewsItems {
			articles = articles[:maxNewsItems]
		}
	}

	lang := visitorLang(c)

	return c.Render(TemplateName, fiber.Map{
		"Tenant":      t,
		"Content":     content,
		"Articles":    articles,
		"Lang":        string(lang),
		"T":           translator(lang),
		"MapEmbedURL": mapEmbedURL(content, t),
		"VideoID":     videoID(content),
	})
}

// visitorLang reads the language cookie, defaulting to Japanese.
func visitorLang(c *fiber.Ctx) i18n.Lang {
	code := c.Cookies(i18n.CookieName)
	if i18n.Supported(code) {
		return i18n.Lang(code)
	}

	return i18n.LangJA
}

// translator returns a template helper resolving interface strings.
func translator(lang i18n.Lang) func(string) string {
	return func(key string) string {
		return i18n.Lookup(key, lang)
	}
}

// mapEmbedURL derives the embeddable map URL from the info section.
func mapEmbedURL(content map[string]any, t *models.Tenant) string {
	info, _ := content["info"].(map[string]any)
	query, _ := info["mapQuery"].(string)
	address, _ := info["address"].(string)

	return GoogleMapEmbedURL(query, t.Name, address)
}

// videoID derives the hero video id from the hero section.
func videoID(content map[string]any) string {
	hero, _ := content["hero"].(map[string]any)
	raw, _ := hero["videoUrl"].(string)

	return YouTubeID(raw)
}
