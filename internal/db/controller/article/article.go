// Package article provides CRUD and listing operations for news articles.
package article

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/db/models"
)

var (
	// ErrArticleNotFound is returned when an article is not found.
	ErrArticleNotFound = errors.New("article not found")
	// ErrTitleEmpty is returned when attempting to create an article without a title.
	ErrTitleEmpty = errors.New("article title cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves an article by ID, scoped to a tenant.
func Get(db *gorm.DB, tenantID, id uint64) (*models.Article, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var a models.Article
	result := db.Where("tenant_id = ?", tenantID).First(&a, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, result.Error
	}

	return &a, nil
}

// GetAll retrieves all articles of a tenant, newest first.
func GetAll(db *gorm.DB, tenantID uint64) ([]models.Article, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var articles []models.Article
	result := db.Where("tenant_id = ?", tenantID).
		Order("published_at DESC NULLS LAST, created_at DESC").
		Find(&articles)
	if result.Error != nil {
		return nil, result.Error
	}

	return articles, nil
}

// Published retrieves the articles of a tenant that are publicly visible at
// the given time: status published and PublishedAt not in the future.
func Published(db *gorm.DB, tenantID uint64, now time.Time) ([]models.Article, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var articles []models.Article
	result := db.Where("tenant_id = ? AND status = ? AND published_at IS NOT NULL AND published_at <= ?",
		tenantID, models.ArticleStatusPublished, now).
		Order("published_at DESC").
		Find(&articles)
	if result.Error != nil {
		return nil, result.Error
	}

	return articles, nil
}

// Create creates a new article.
func Create(db *gorm.DB, a *models.Article) error {
	if db == nil {
		return ErrDBNil
	}
	if a.Title == "" {
		return ErrTitleEmpty
	}

	if a.Status == "" {
		a.Status = models.ArticleStatusDraft
	}

	return db.Create(a).Error
}

// Update saves changes to an existing article.
func Update(db *gorm.DB, a *models.Article) error {
	if db == nil {
		return ErrDBNil
	}
	if a.ID == 0 {
		return ErrArticleNotFound
	}
	if a.Title == "" {
		return ErrTitleEmpty
	}

	return db.Save(a).Error
}

// Delete soft-deletes an article by ID, scoped to a tenant.
func Delete(db *gorm.DB, tenantID, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("tenant_id = ?", tenantID).Delete(&models.Article{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}

	return nil
}

// SeedIfEmpty inserts the given articles for a tenant only when the tenant
// has none yet. Repeat calls are no-ops, so first-read initialization stays
// idempotent.
func SeedIfEmpty(db *gorm.DB, tenantID uint64, articles []models.Article) error {
	if db == nil {
		return ErrDBNil
	}

	var count int64
	if result := db.Model(&models.Article{}).Where("tenant_id = ?", tenantID).Count(&count); result.Error != nil {
		return result.Error
	}

	if count > 0 {
		return nil
	}

	for i := range articles {
		articles[i].TenantID = tenantID
	}

	return db.Create(&articles).Error
}
