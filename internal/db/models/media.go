package models

import (
	"strings"
	"time"
)

// Media represents an uploaded file stored in object storage, with its
// metadata row scoped to the owning tenant. The tenant is defaulted from the
// acting user's current tenant on upload.
type Media struct {
	ID       uint64 `gorm:"primaryKey"`
	TenantID uint64 `gorm:"not null;index"`
	Tenant   Tenant `gorm:"foreignKey:TenantID;references:ID;constraint:OnDelete:CASCADE"`
	// Key is the object storage key (unique per bucket).
	Key      string `gorm:"unique;size:512;not null"`
	FileName string `gorm:"size:255"`
	MimeType string `gorm:"size:100"`
	// Size is the object size in bytes.
	Size int64
	// Alt is the alternative text for the image.
	Alt string `gorm:"size:512"`
	// Variants is a comma-separated list of generated size variant names
	// (e.g. "thumbnail,card"), each stored under Key with a suffix.
	Variants     string `gorm:"size:255"`
	UploadedByID *uint64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// URL returns the public URL of the media object given the storage base URL.
func (m *Media) URL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + m.Key
}

// VariantList splits the Variants field into its names.
func (m *Media) VariantList() []string {
	if m.Variants == "" {
		return nil
	}

	return strings.Split(m.Variants, ",")
}
