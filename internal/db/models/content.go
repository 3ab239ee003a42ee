// Package models contains database model definitions.
package models

import "time"

// SiteContent is the JSON content document describing all editable
// text/image/video fields of one page of a tenant's site. The document is
// treated opaquely by the database layer; the editor replaces it wholesale.
type SiteContent struct {
	ID       uint64 `gorm:"primaryKey"`
	TenantID uint64 `gorm:"not null;uniqueIndex:idx_tenant_page"`
	// Page identifies which page the document belongs to (e.g. "home").
	Page string `gorm:"size:100;not null;uniqueIndex:idx_tenant_page"`
	// Data is the raw JSON content document.
	Data        []byte `gorm:"type:jsonb"`
	UpdatedByID *uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for the SiteContent model.
func (SiteContent) TableName() string {
	return "site_contents"
}
