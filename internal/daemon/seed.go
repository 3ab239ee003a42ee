package daemon

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/config"
	"github.com/tablecraft/tablecraft/internal/db/controller/article"
	"github.com/tablecraft/tablecraft/internal/db/controller/content"
	"github.com/tablecraft/tablecraft/internal/db/controller/review"
	"github.com/tablecraft/tablecraft/internal/db/models"
)

// seed creates the default tenant, an initial super admin and demo data.
// Every step is guarded by an existence check, so repeated startups leave
// existing data untouched.
func seed(_ *config.Config, db *gorm.DB) {
	tenant := seedDefaultTenant(db)
	if tenant == nil {
		return
	}

	seedAdminUser(db, tenant)

	if _, err := content.GetOrSeed(db, tenant.ID, content.DefaultPage, content.DefaultDocument()); err != nil {
		log.Error().Err(err).Msg("failed to seed default content document")
	}

	if err := article.SeedIfEmpty(db, tenant.ID, mockArticles()); err != nil {
		log.Error().Err(err).Msg("failed to seed demo articles")
	}

	if err := review.SeedIfEmpty(db, tenant.ID, mockReviews()); err != nil {
		log.Error().Err(err).Msg("failed to seed demo reviews")
	}

	seedKeywordRanks(db, tenant.ID)
}

func seedDefaultTenant(db *gorm.DB) *models.Tenant {
	var tenant models.Tenant

	err := db.Where("is_default = ?", true).First(&tenant).Error
	if err == nil {
		return &tenant
	}

	tenant = models.Tenant{
		Name:      "木村屋 本店",
		Slug:      "kimuraya-honten",
		Status:    models.TenantStatusActive,
		IsDefault: true,
		Settings: models.TenantSettings{
			ThemeColor:    "#b03a2e",
			EnableNews:    true,
			EnableReviews: true,
			MaxMediaItems: 100,
			MaxArticles:   50,
		},
	}

	if err = db.Create(&tenant).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed default tenant")
		return nil
	}

	return &tenant
}

func seedAdminUser(db *gorm.DB, tenant *models.Tenant) {
	var count int64

	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	// change this password after the first login
	admin := models.User{
		Email:           "admin@example.com",
		Password:        models.HashPassword("changeme"),
		Name:            "Administrator",
		Role:            models.RoleAdmin,
		IsSuperAdmin:    true,
		Active:          true,
		Tenants:         []models.Tenant{*tenant},
		CurrentTenantID: &tenant.ID,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed admin user")
	}
}

func seedKeywordRanks(db *gorm.DB, tenantID uint64) {
	var count int64

	db.Model(&models.KeywordRank{}).Where("tenant_id = ?", tenantID).Count(&count)
	if count > 0 {
		return
	}

	checked := time.Now().AddDate(0, 0, -1)

	ranks := []models.KeywordRank{
		{TenantID: tenantID, Keyword: "銀座 和食", CurrentRank: 2, PreviousRank: 3, CheckedAt: checked},
		{TenantID: tenantID, Keyword: "銀座 ランチ", CurrentRank: 5, PreviousRank: 4, CheckedAt: checked},
		{TenantID: tenantID, Keyword: "銀座 個室 ディナー", CurrentRank: 4, PreviousRank: 4, CheckedAt: checked},
		{TenantID: tenantID, Keyword: "東京 もつ鍋", CurrentRank: 8, PreviousRank: 12, CheckedAt: checked},
	}

	if err := db.Create(&ranks).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed keyword ranks")
	}
}

func mockArticles() []models.Article {
	now := time.Now()
	older := now.AddDate(0, 0, -14)
	oldest := now.AddDate(0, -1, 0)

	return []models.Article{
		{
			Title:       "夏季限定メニューのお知らせ",
			Content:     "<p>旬の食材を使った夏季限定メニューを開始しました。</p>",
			Excerpt:     "旬の食材を使った夏季限定メニューを開始しました。",
			Author:      "店主",
			Status:      models.ArticleStatusPublished,
			PublishedAt: &older,
		},
		{
			Title:       "営業時間変更のお知らせ",
			Content:     "<p>8月より平日の営業時間を変更いたします。</p>",
			Excerpt:     "8月より平日の営業時間を変更いたします。",
			Author:      "店主",
			Status:      models.ArticleStatusPublished,
			PublishedAt: &oldest,
		},
		{
			Title:   "秋の特別コース(準備中)",
			Content: "<p>秋の特別コースを準備しています。</p>",
			Author:  "店主",
			Status:  models.ArticleStatusDraft,
		},
	}
}

func mockReviews() []models.Review {
	return []models.Review{
		{
			Author:   "田中",
			Rating:   5,
			Text:     "雰囲気も料理も最高でした。また伺います。",
			PostedAt: time.Now().AddDate(0, 0, -3),
		},
		{
			Author:   "佐藤",
			Rating:   4,
			Text:     "もつ鍋が絶品。少し待ち時間がありました。",
			PostedAt: time.Now().AddDate(0, 0, -10),
		},
		{
			Author:   "John",
			Rating:   5,
			Text:     "Amazing food and very friendly staff.",
			PostedAt: time.Now().AddDate(0, 0, -20),
		},
	}
}
