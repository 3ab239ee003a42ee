package models

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

// TenantStatus represents the lifecycle state of a tenant.
type TenantStatus string

const (
	// TenantStatusActive indicates the tenant's site is live and editable.
	TenantStatusActive TenantStatus = "active"
	// TenantStatusSuspended indicates the tenant is temporarily disabled.
	TenantStatusSuspended TenantStatus = "suspended"
	// TenantStatusArchived indicates the tenant has been retired.
	TenantStatusArchived TenantStatus = "archived"
)

// slugRE is the allowed shape of a tenant slug: lowercase alphanumeric
// segments separated by single hyphens.
var slugRE = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Tenant represents a single restaurant/storefront instance sharing the
// multi-tenant deployment. Each tenant owns its content documents, media,
// articles and reviews; users are related to tenants via a many-to-many
// membership.
type Tenant struct {
	// ID is the unique identifier for the tenant.
	ID uint64 `gorm:"primaryKey"`
	// Name is the display name of the restaurant.
	Name string `gorm:"size:255;not null" validate:"required,max=255"`
	// Slug is the unique, URL-safe identifier derived from the name on
	// creation when absent.
	Slug string `gorm:"unique;size:100;not null" validate:"omitempty,tenantslug"`
	// Status is the lifecycle state of the tenant.
	Status TenantStatus `gorm:"type:varchar(20);not null;default:'active'" validate:"omitempty,oneof=active suspended archived"`
	// IsDefault marks the tenant used as fallback when no host matches and as
	// the default membership for new super-admins. Exactly one tenant should
	// carry this flag.
	IsDefault bool `gorm:"default:false"`
	// Domains are the hostnames this tenant's site is served under.
	Domains []TenantDomain `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	// Settings holds per-tenant theme, feature flags and numeric limits.
	Settings TenantSettings `gorm:"embedded;embeddedPrefix:settings_"`
	// ContactEmail is the tenant's contact address.
	ContactEmail string `gorm:"size:255" validate:"omitempty,email"`
	// ContactPhone is the tenant's contact phone number.
	ContactPhone string `gorm:"size:50"`
	// CreatedAt is the timestamp when the tenant was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the tenant was last updated (managed by GORM).
	UpdatedAt time.Time
	// DeletedAt is the soft delete timestamp (zero if not deleted, managed by GORM).
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TenantDomain is a hostname/active-flag pair a tenant site answers on.
type TenantDomain struct {
	ID       uint64 `gorm:"primaryKey"`
	TenantID uint64 `gorm:"not null;index"`
	Hostname string `gorm:"size:255;not null;uniqueIndex" validate:"required,hostname"`
	Active   bool   `gorm:"default:true"`
}

// TenantSettings holds the nested per-tenant settings (theme, feature flags,
// numeric limits).
type TenantSettings struct {
	ThemeColor    string `gorm:"size:20"`
	LogoURL       string `gorm:"size:512"`
	EnableNews    bool   `gorm:"default:true"`
	EnableReviews bool   `gorm:"default:true"`
	MaxMediaItems int    `gorm:"default:200" validate:"omitempty,min=0"`
	MaxArticles   int    `gorm:"default:100" validate:"omitempty,min=0"`
}

// TableName specifies the database table name for the TenantDomain model.
func (TenantDomain) TableName() string {
	return "tenant_domains"
}

// ValidSlug reports whether s is an acceptable tenant slug.
func ValidSlug(s string) bool {
	return slugRE.MatchString(s)
}

// Slugify derives a slug from a tenant name: lowercased, non-alphanumeric
// runs collapsed to single hyphens, leading/trailing hyphens trimmed.
func Slugify(name string) string {
	var b strings.Builder

	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)

			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')

				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
