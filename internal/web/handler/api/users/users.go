// Package users provides the account JSON API used by the dashboard and editor.
package users

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/auth"
	"github.com/tablecraft/tablecraft/internal/config"
	"github.com/tablecraft/tablecraft/internal/db/models"
	"github.com/tablecraft/tablecraft/internal/web/handler"
	"github.com/tablecraft/tablecraft/internal/web/session"
)

// Path is the base path of the users API.
const Path = "/api/users"

// tenantInfo is the tenant membership payload of the me endpoint.
type tenantInfo struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// meResponse is the payload returned by the me endpoint.
type meResponse struct {
	ID              uint64       `json:"id"`
	Email           string       `json:"email"`
	Name            string       `json:"name"`
	Role            models.Role  `json:"role"`
	IsSuperAdmin    bool         `json:"isSuperAdmin"`
	Tenants         []tenantInfo `json:"tenants"`
	CurrentTenantID uint64       `json:"currentTenantId,omitempty"`
}

// Service is the users API handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the users API handler.
var Handler = Service{}

// Init initializes the users API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get("/me", s.Me)
		router.Post("/logout", s.Logout)
	})

	return nil
}

// Me returns the authenticated user with its tenant memberships.
func (s *Service) Me(c *fiber.Ctx) error {
	user := auth.SessionUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	// reload with memberships, the session copy may be stale
	var dbUser models.User
	if err := s.db.Preload("Tenants").First(&dbUser, user.ID).Error; err != nil {
		log.Error().Err(err).Uint64("user_id", user.ID).Msg("failed to load user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	resp := meResponse{
		ID:           dbUser.ID,
		Email:        dbUser.Email,
		Name:         dbUser.Name,
		Role:         dbUser.Role,
		IsSuperAdmin: dbUser.IsSuperAdmin,
		Tenants:      make([]tenantInfo, 0, len(dbUser.Tenants)),
	}

	for _, t := range dbUser.Tenants {
		resp.Tenants = append(resp.Tenants, tenantInfo{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}

	if dbUser.CurrentTenantID != nil {
		resp.CurrentTenantID = *dbUser.CurrentTenantID
	}

	return c.JSON(resp)
}

// Logout destroys the session and clears the session cookie.
func (s *Service) Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies("session")
	if sessionID != "" {
		sessData := new(session.Data)
		if err := sessData.Destroy(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    "",
		MaxAge:   -1,
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{"success": true})
}
