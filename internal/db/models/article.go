package models

import (
	"time"

	"gorm.io/gorm"
)

// ArticleStatus represents the publication state of an article.
type ArticleStatus string

const (
	// ArticleStatusDraft indicates the article is not yet published.
	ArticleStatusDraft ArticleStatus = "draft"
	// ArticleStatusPublished indicates the article is publicly visible once
	// its PublishedAt time has passed.
	ArticleStatusPublished ArticleStatus = "published"
	// ArticleStatusPrivate indicates the article is only visible to editors.
	ArticleStatusPrivate ArticleStatus = "private"
)

// Article is a blog/news entry shown in the news section of a tenant's site.
type Article struct {
	ID       uint64 `gorm:"primaryKey"`
	TenantID uint64 `gorm:"not null;index"`
	Title    string `gorm:"size:255;not null"`
	// Content is the article body as an HTML string.
	Content string `gorm:"type:text"`
	Excerpt string `gorm:"size:1024"`
	// FeaturedImage is the URL of the article's cover image.
	FeaturedImage string `gorm:"size:512"`
	// Tags is a comma-separated tag list.
	Tags   string        `gorm:"size:512"`
	Author string        `gorm:"size:255"`
	Status ArticleStatus `gorm:"type:varchar(20);not null;default:'draft'"`
	// PublishedAt is when the article becomes publicly visible. Articles with
	// a future PublishedAt are excluded from public listings.
	PublishedAt *time.Time
	// SEOTitle and SEODescription feed the page metadata.
	SEOTitle       string `gorm:"size:255"`
	SEODescription string `gorm:"size:512"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// PubliclyVisible reports whether the article should appear in public
// listings at the given time.
func (a *Article) PubliclyVisible(now time.Time) bool {
	if a.Status != ArticleStatusPublished {
		return false
	}

	return a.PublishedAt != nil && !a.PublishedAt.After(now)
}
