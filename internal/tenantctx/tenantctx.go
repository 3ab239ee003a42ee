// Package tenantctx propagates the acting tenant and user into PostgreSQL
// session variables consumed by row-level-security policies defined in the
// database schema.
package tenantctx

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/db/models"
)

const (
	// SettingTenant is the session-config key holding the acting tenant id.
	SettingTenant = "app.current_tenant"
	// SettingUserID is the session-config key holding the acting user id.
	SettingUserID = "app.current_user_id"
	// SettingSuperAdmin is the session-config key marking super-admin requests.
	SettingSuperAdmin = "app.is_super_admin"

	// HeaderTenantID is the request header carrying an explicit tenant id.
	HeaderTenantID = "X-Tenant-ID"
	// QueryTenant is the query parameter carrying an explicit tenant id.
	QueryTenant = "tenant"
)

// Context holds the identifiers written into the database session.
type Context struct {
	TenantID     string
	UserID       string
	IsSuperAdmin bool
}

// Resolve determines the tenant context for a request. The tenant id is taken
// in priority order from the authenticated user's current tenant, the
// X-Tenant-ID header, then the tenant query parameter.
func Resolve(user *models.User, headerTenant, queryTenant string) Context {
	var c Context

	if user != nil {
		if user.ID > 0 {
			c.UserID = strconv.FormatUint(user.ID, 10)
		}

		c.IsSuperAdmin = user.IsSuperAdmin

		if user.CurrentTenantID != nil && *user.CurrentTenantID > 0 {
			c.TenantID = strconv.FormatUint(*user.CurrentTenantID, 10)
			return c
		}
	}

	if headerTenant != "" {
		c.TenantID = headerTenant
		return c
	}

	c.TenantID = queryTenant

	return c
}

// Set writes the tenant context into the database session via set_config.
// The settings are session-scoped and read by RLS policies.
func Set(db *gorm.DB, c Context) error {
	if db == nil {
		return nil
	}

	return db.Exec(
		"SELECT set_config(?, ?, false), set_config(?, ?, false), set_config(?, ?, false)",
		SettingTenant, c.TenantID,
		SettingUserID, c.UserID,
		SettingSuperAdmin, strconv.FormatBool(c.IsSuperAdmin),
	).Error
}

// Clear resets the tenant context session variables.
func Clear(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	return db.Exec(
		"SELECT set_config(?, '', false), set_config(?, '', false), set_config(?, '', false)",
		SettingTenant, SettingUserID, SettingSuperAdmin,
	).Error
}
