// Package media provides the JSON API for listing, uploading and deleting
// media files of a tenant.
package media

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/auth"
	"github.com/tablecraft/tablecraft/internal/config"
	mediadb "github.com/tablecraft/tablecraft/internal/db/controller/media"
	"github.com/tablecraft/tablecraft/internal/db/controller/tenant"
	"github.com/tablecraft/tablecraft/internal/db/models"
	"github.com/tablecraft/tablecraft/internal/storage"
	"github.com/tablecraft/tablecraft/internal/web/handler"
)

const (
	// Path is the base path of the media API.
	Path = "/api/media"

	// UploadPath is the multipart upload endpoint.
	UploadPath = "/api/upload"

	// formFileKey is the multipart form field holding the file.
	formFileKey = "file"
)

// item is the media payload returned by the list endpoint.
type item struct {
	ID       uint64 `json:"id"`
	Key      string `json:"key"`
	FileName string `json:"filename"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
	Alt      string `json:"alt"`
	URL      string `json:"url"`
}

// Service is the media API handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	db      *gorm.DB
	auth    *auth.Service
	storage *storage.Service
}

// Handler is the media API handler.
var Handler = Service{}

// Init initializes the media API handler. The storage service may be nil
// when object storage is disabled; uploads then fail with 503.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, store *storage.Service) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.auth = auth.NewService(db)
	s.storage = store

	app.Route(Path, func(router fiber.Router) {
		router.Get("/list", s.List)
		router.Post("/delete", s.Delete)
	})

	app.Post(UploadPath, s.Upload)

	return nil
}

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
		return 0, errNoTenant
	}

	ok, err := s.auth.CanAccessTenant(user, tenantID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errTenantForbidden
	}

	return tenantID, nil
}

// List returns the tenant's media items, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	tenantID, err := s.resolveTenant(c)
	if err != nil {
		return s.tenantError(c, err)
	}

	rows, err := mediadb.List(s.db, tenantID)
	if err != nil {
		log.Error().Err(err).Uint64("tenant_id", tenantID).Msg("failed to list media")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	items := make([]item, 0, len(rows))
	for i := range rows {
		items = append(items, item{
			ID:       rows[i].ID,
			Key:      rows[i].Key,
			FileName: rows[i].FileName,
			MimeType: rows[i].MimeType,
			Size:     rows[i].Size,
			Alt:      rows[i].Alt,
			URL:      s.storage.URL(rows[i].Key),
		})
	}

	return c.JSON(fiber.Map{"items": items})
}

// deleteRequest is the delete endpoint payload.
type deleteRequest struct {
	ID uint64 `json:"id"`
}

// Delete removes a media item: first the metadata row, then the object. A
// failed object removal is logged but does not fail the request; the row is
// already gone and the object is unreferenced.
func (s *Service) Delete(c *fiber.Ctx) error {
	tenantID, err := s.resolveTenant(c)
	if err != nil {
		return s.tenantError(c, err)
	}

	req := new(deleteRequest)
	if err = c.BodyParser(req); err != nil || req.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	m, err := mediadb.Get(s.db, tenantID, req.ID)
	if err != nil {
		if errors.Is(err, mediadb.ErrMediaNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}

		log.Error().Err(err).Uint64("tenant_id", tenantID).Uint64("media_id", req.ID).
			Msg("failed to load media item")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	if err = mediadb.Delete(s.db, tenantID, req.ID); err != nil {
		log.Error().Err(err).Uint64("tenant_id", tenantID).Uint64("media_id", req.ID).
			Msg("failed to delete media row")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	if err = s.storage.Delete(c.Context(), m.Key); err != nil && !errors.Is(err, storage.ErrNotConfigured) {
		log.Warn().Err(err).Str("key", m.Key).Msg("failed to remove object from storage")
	}

	return c.JSON(fiber.Map{"success": true})
}

// Upload stores a multipart file in object storage and records its metadata.
// The owning tenant defaults to the acting user's current tenant.
func (s *Service) Upload(c *fiber.Ctx) error {
	if s.storage == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": storage.ErrNotConfigured.Error()})
	}

	tenantID, err := s.resolveTenant(c)
	if err != nil {
		return s.tenantError(c, err)
	}

	fileHeader, err := c.FormFile(formFileKey)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file"})
	}

	t, err := tenant.Get(s.db, tenantID)
	if err != nil {
		log.Error().Err(err).Uint64("tenant_id", tenantID).Msg("failed to load tenant")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable file"})
	}
	defer file.Close() //nolint:errcheck

	key := objectKey(t.Slug, fileHeader.Filename)
	contentType := fileHeader.Header.Get(fiber.HeaderContentType)

	if err = s.storage.Upload(c.Context(), key, file, fileHeader.Size, contentType); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload object")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "upload failed"})
	}

	var uploadedBy *uint64
	if user := auth.SessionUser(c); user != nil {
		uploadedBy = &user.ID
	}

	m := &models.Media{
		TenantID:     tenantID,
		Key:          key,
		FileName:     fileHeader.Filename,
		MimeType:     contentType,
		Size:         fileHeader.Size,
		Alt:          c.FormValue("alt"),
		UploadedByID: uploadedBy,
	}

	if err = mediadb.Create(s.db, m, t.Settings.MaxMediaItems); err != nil {
		// roll the object back, the metadata row is the source of truth
		if delErr := s.storage.Delete(c.Context(), key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("failed to remove orphaned object")
		}

		if errors.Is(err, mediadb.ErrLimitReached) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}

		log.Error().Err(err).Uint64("tenant_id", tenantID).Msg("failed to store media metadata")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(item{
		ID:       m.ID,
		Key:      m.Key,
		FileName: m.FileName,
		MimeType: m.MimeType,
		Size:     m.Size,
		Alt:      m.Alt,
		URL:      s.storage.URL(m.Key),
	})
}

// objectKey builds a collision-free object key under the tenant's prefix,
// keeping the original file extension.
func objectKey(tenantSlug, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s%s", tenantSlug, uuid.NewString(), ext)
}

func (s *Service) tenantError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errNoTenant):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, errTenantForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("failed to resolve tenant")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
