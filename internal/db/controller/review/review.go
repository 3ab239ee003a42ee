// Package review provides operations for managing customer reviews and replies.
package review

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/db/models"
)

var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrReplyEmpty is returned when attempting to store an empty reply.
	ErrReplyEmpty = errors.New("reply text cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all reviews of a tenant, newest first.
func GetAll(db *gorm.DB, tenantID uint64) ([]models.Review, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var reviews []models.Review
	result := db.Where("tenant_id = ?", tenantID).Order("posted_at DESC").Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}

// Get retrieves a review by ID, scoped to a tenant.
func Get(db *gorm.DB, tenantID, id uint64) (*models.Review, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var r models.Review
	result := db.Where("tenant_id = ?", tenantID).First(&r, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, result.Error
	}

	return &r, nil
}

// Reply stores the owner's public reply on a review and stamps the reply
// time. An existing reply is overwritten.
func Reply(db *gorm.DB, tenantID, id uint64, text string, now time.Time) (*models.Review, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if text == "" {
		return nil, ErrReplyEmpty
	}

	r, err := Get(db, tenantID, id)
	if err != nil {
		return nil, err
	}

	r.Reply = text
	r.RepliedAt = &now

	if result := db.Save(r); result.Error != nil {
		return nil, result.Error
	}

	return r, nil
}

// SeedIfEmpty inserts the given reviews for a tenant only when the tenant has
// none yet.
func SeedIfEmpty(db *gorm.DB, tenantID uint64, reviews []models.Review) error {
	if db == nil {
		return ErrDBNil
	}

	var count int64
	if result := db.Model(&models.Review{}).Where("tenant_id = ?", tenantID).Count(&count); result.Error != nil {
		return result.Error
	}

	if count > 0 {
		return nil
	}

	for i := range reviews {
		reviews[i].TenantID = tenantID
	}

	return db.Create(&reviews).Error
}
