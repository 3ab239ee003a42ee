package models

import "time"

// Review is a customer review imported from the tenant's business profile,
// managed (replied to) from the dashboard.
type Review struct {
	ID       uint64 `gorm:"primaryKey"`
	TenantID uint64 `gorm:"not null;index"`
	Author   string `gorm:"size:255"`
	// Rating is the star rating, 1 to 5.
	Rating int `gorm:"not null"`
	Text   string `gorm:"type:text"`
	// Reply is the owner's public reply, empty if unanswered.
	Reply     string `gorm:"type:text"`
	RepliedAt *time.Time
	// PostedAt is when the customer posted the review.
	PostedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
