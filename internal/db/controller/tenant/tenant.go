// Package tenant provides CRUD operations for managing tenants.
package tenant

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/db/models"
)

const (
	slugQueryPattern = "slug = ?"
)

var (
	// ErrTenantNotFound is returned when a tenant is not found.
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrTenantNameEmpty is returned when attempting to create a tenant with an empty name.
	ErrTenantNameEmpty = errors.New("tenant name cannot be empty")
	// ErrSlugTaken is returned when the derived or given slug already exists.
	ErrSlugTaken = errors.New("tenant slug already exists")
	// ErrNoDefaultTenant is returned when no tenant carries the default flag.
	ErrNoDefaultTenant = errors.New("no default tenant configured")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// validate checks tenant field constraints declared on the model.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// tenantslug matches the slug shape enforced at creation time
	_ = v.RegisterValidation("tenantslug", func(fl validator.FieldLevel) bool {
		return models.ValidSlug(fl.Field().String())
	})

	return v
}

// Get retrieves a tenant by its ID, including its domains.
func Get(db *gorm.DB, id uint64) (*models.Tenant, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var t models.Tenant
	result := db.Preload("Domains").First(&t, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, result.Error
	}

	return &t, nil
}

// GetBySlug retrieves a tenant by its slug.
func GetBySlug(db *gorm.DB, slug string) (*models.Tenant, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var t models.Tenant
	result := db.Preload("Domains").Where(slugQueryPattern, slug).First(&t)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, result.Error
	}

	return &t, nil
}

// GetByHostname retrieves the tenant serving the given hostname via an
// active domain entry.
func GetByHostname(db *gorm.DB, hostname string) (*models.Tenant, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var t models.Tenant
	result := db.Preload("Domains").
		Joins("JOIN tenant_domains ON tenant_domains.tenant_id = tenants.id").
		Where("tenant_domains.hostname = ? AND tenant_domains.active = ?", hostname, true).
		First(&t)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, result.Error
	}

	return &t, nil
}

// GetDefault retrieves the tenant flagged as default.
func GetDefault(db *gorm.DB) (*models.Tenant, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var t models.Tenant
	result := db.Preload("Domains").Where("is_default = ?", true).First(&t)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNoDefaultTenant
		}
		return nil, result.Error
	}

	return &t, nil
}

// GetAll retrieves all tenants.
func GetAll(db *gorm.DB) ([]models.Tenant, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var tenants []models.Tenant
	result := db.Preload("Domains").Find(&tenants)
	if result.Error != nil {
		return nil, result.Error
	}

	return tenants, nil
}

// Create creates a new tenant. The slug is derived from the name when absent
// and must be unique.
func Create(db *gorm.DB, t *models.Tenant) error {
	if db == nil {
		return ErrDBNil
	}
	if t.Name == "" {
		return ErrTenantNameEmpty
	}

	if t.Slug == "" {
		t.Slug = models.Slugify(t.Name)
	}

	if t.Status == "" {
		t.Status = models.TenantStatusActive
	}

	if err := validate.Struct(t); err != nil {
		return err
	}

	// slug uniqueness
	var existing models.Tenant
	result := db.Where(slugQueryPattern, t.Slug).First(&existing)
	if result.Error == nil {
		return ErrSlugTaken
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	return db.Create(t).Error
}

// Update saves changes to an existing tenant after re-validating it.
func Update(db *gorm.DB, t *models.Tenant) error {
	if db == nil {
		return ErrDBNil
	}
	if t.ID == 0 {
		return ErrTenantNotFound
	}

	if err := validate.Struct(t); err != nil {
		return err
	}

	return db.Save(t).Error
}

// Delete soft-deletes a tenant by ID (hidden from queries, kept in the table).
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Tenant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTenantNotFound
	}

	return nil
}
