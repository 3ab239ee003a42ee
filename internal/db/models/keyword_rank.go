package models

import "time"

// KeywordRank tracks a tenant's search rank for one keyword between two
// measurements, shown on the analytics dashboard.
type KeywordRank struct {
	ID           uint64 `gorm:"primaryKey"`
	TenantID     uint64 `gorm:"not null;index"`
	Keyword      string `gorm:"size:255;not null"`
	CurrentRank  int
	PreviousRank int
	CheckedAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for the KeywordRank model.
func (KeywordRank) TableName() string {
	return "keyword_ranks"
}
