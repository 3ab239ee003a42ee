// Package auth provides authorization checks over users, roles and tenant
// membership.
package auth

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/db/models"
)

// Service provides authorization functionality.
type Service struct {
	db *gorm.DB
}

// NewService creates a new auth service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CanAccessTenant checks whether a user may act on the given tenant: super
// admins may act on any tenant, other users only on tenants they belong to.
func (s *Service) CanAccessTenant(user *models.User, tenantID uint64) (bool, error) {
	if user == nil || user.ID == 0 {
		return false, nil
	}

	if user.IsSuperAdmin {
		return true, nil
	}

	var count int64

	err := s.db.Table("user_tenants").
		Where("user_id = ? AND tenant_id = ?", user.ID, tenantID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check tenant membership: %w", err)
	}

	return count > 0, nil
}

// ActingTenant resolves the tenant id a user is acting on: the current
// tenant when set, otherwise the user's only tenant membership. Returns 0
// when no tenant can be determined.
func (s *Service) ActingTenant(user *models.User) (uint64, error) {
	if user == nil || user.ID == 0 {
		return 0, nil
	}

	if user.CurrentTenantID != nil && *user.CurrentTenantID > 0 {
		return *user.CurrentTenantID, nil
	}

	var tenantIDs []uint64

	err := s.db.Table("user_tenants").
		Where("user_id = ?", user.ID).
		Pluck("tenant_id", &tenantIDs).Error
	if err != nil {
		return 0, fmt.Errorf("failed to list tenant memberships: %w", err)
	}

	if len(tenantIDs) == 1 {
		return tenantIDs[0], nil
	}

	return 0, nil
}

// IsAdmin reports whether the user may manage tenant settings, users and
// reviews.
func IsAdmin(user *models.User) bool {
	if user == nil {
		return false
	}

	return user.IsSuperAdmin || user.Role == models.RoleAdmin
}
