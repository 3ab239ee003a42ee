// Package content provides read/replace operations for tenant content documents.
//
// A content document is the JSON blob describing all editable text, image and
// video fields of one page of a tenant's site. Writes are last-write-wins
// full-document replacements.
package content

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/db/models"
)

const (
	tenantPageQueryPattern = "tenant_id = ? AND page = ?"

	// DefaultPage is the page key of the main marketing page.
	DefaultPage = "home"
)

var (
	// ErrContentNotFound is returned when a content document is not found.
	ErrContentNotFound = errors.New("content document not found")
	// ErrInvalidJSON is returned when a document to store is not valid JSON.
	ErrInvalidJSON = errors.New("content document is not valid JSON")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the content document for a tenant page.
func Get(db *gorm.DB, tenantID uint64, page string) (*models.SiteContent, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var doc models.SiteContent
	result := db.Where(tenantPageQueryPattern, tenantID, page).First(&doc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, result.Error
	}

	return &doc, nil
}

// GetOrSeed retrieves the content document for a tenant page, creating it
// from the given default document on first read. Subsequent reads return the
// stored document without re-seeding.
func GetOrSeed(db *gorm.DB, tenantID uint64, page string, def []byte) (*models.SiteContent, error) {
	doc, err := Get(db, tenantID, page)
	if err == nil {
		return doc, nil
	}

	if !errors.Is(err, ErrContentNotFound) {
		return nil, err
	}

	if !json.Valid(def) {
		return nil, ErrInvalidJSON
	}

	doc = &models.SiteContent{
		TenantID: tenantID,
		Page:     page,
		Data:     def,
	}

	if result := db.Create(doc); result.Error != nil {
		return nil, result.Error
	}

	return doc, nil
}

// Set replaces the content document for a tenant page (upsert,
// last-write-wins). The document must be valid JSON.
func Set(db *gorm.DB, tenantID uint64, page string, data []byte, updatedBy *uint64) (*models.SiteContent, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if !json.Valid(data) {
		return nil, ErrInvalidJSON
	}

	var doc models.SiteContent
	result := db.Where(tenantPageQueryPattern, tenantID, page).First(&doc)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		doc = models.SiteContent{
			TenantID:    tenantID,
			Page:        page,
			Data:        data,
			UpdatedByID: updatedBy,
		}

		if result = db.Create(&doc); result.Error != nil {
			return nil, result.Error
		}

		return &doc, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	doc.Data = data
	doc.UpdatedByID = updatedBy

	if result = db.Save(&doc); result.Error != nil {
		return nil, result.Error
	}

	return &doc, nil
}

// Delete removes the content document for a tenant page.
func Delete(db *gorm.DB, tenantID uint64, page string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where(tenantPageQueryPattern, tenantID, page).Delete(&models.SiteContent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}

	return nil
}
