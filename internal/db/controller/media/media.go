// Package media provides metadata operations for uploaded media files.
//
// Object bytes live in S3-compatible storage; these functions manage the
// per-tenant metadata rows that reference them.
package media

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/db/models"
)

var (
	// ErrMediaNotFound is returned when a media item is not found.
	ErrMediaNotFound = errors.New("media item not found")
	// ErrKeyEmpty is returned when attempting to create a media item without an object key.
	ErrKeyEmpty = errors.New("media object key cannot be empty")
	// ErrLimitReached is returned when the tenant's media limit is exhausted.
	ErrLimitReached = errors.New("tenant media limit reached")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List retrieves all media items of a tenant, newest first.
func List(db *gorm.DB, tenantID uint64) ([]models.Media, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.Media
	result := db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// Get retrieves a media item by ID, scoped to a tenant.
func Get(db *gorm.DB, tenantID, id uint64) (*models.Media, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var m models.Media
	result := db.Where("tenant_id = ?", tenantID).First(&m, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, result.Error
	}

	return &m, nil
}

// GetByKey retrieves a media item by its object storage key, scoped to a tenant.
func GetByKey(db *gorm.DB, tenantID uint64, key string) (*models.Media, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrKeyEmpty
	}

	var m models.Media
	result := db.Where("tenant_id = ? AND key = ?", tenantID, key).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, result.Error
	}

	return &m, nil
}

// Create stores a media metadata row. When maxItems is positive the tenant's
// current item count is checked against it first.
func Create(db *gorm.DB, m *models.Media, maxItems int) error {
	if db == nil {
		return ErrDBNil
	}
	if m.Key == "" {
		return ErrKeyEmpty
	}

	if maxItems > 0 {
		var count int64
		if result := db.Model(&models.Media{}).Where("tenant_id = ?", m.TenantID).Count(&count); result.Error != nil {
			return result.Error
		}

		if count >= int64(maxItems) {
			return ErrLimitReached
		}
	}

	return db.Create(m).Error
}

// Delete removes a media metadata row by ID, scoped to a tenant.
func Delete(db *gorm.DB, tenantID, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("tenant_id = ?", tenantID).Delete(&models.Media{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}

	return nil
}
