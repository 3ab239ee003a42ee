package tenant

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Tenant{}, &models.TenantDomain{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		tenant        models.Tenant
		expectedError error
		expectedSlug  string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			tenant:        models.Tenant{Name: "Kimuraya"},
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			tenant:        models.Tenant{},
			expectedError: ErrTenantNameEmpty,
		},
		{
			name:         "slug derived from name",
			dbParam:      db,
			tenant:       models.Tenant{Name: "Kimuraya Honten"},
			expectedSlug: "kimuraya-honten",
		},
		{
			name:         "explicit slug kept",
			dbParam:      db,
			tenant:       models.Tenant{Name: "Sakura", Slug: "sakura-ginza"},
			expectedSlug: "sakura-ginza",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM tenants")
			}

			err := Create(tc.dbParam, &tc.tenant)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedSlug, tc.tenant.Slug)
				assert.Equal(t, models.TenantStatusActive, tc.tenant.Status)
			}
		})
	}
}

func TestCreateSlugTaken(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Create(db, &models.Tenant{Name: "Kimuraya"}))

	err := Create(db, &models.Tenant{Name: "Another", Slug: "kimuraya"})
	require.ErrorIs(t, err, ErrSlugTaken)

	// same derived slug collides too
	err = Create(db, &models.Tenant{Name: "kimuraya"})
	require.ErrorIs(t, err, ErrSlugTaken)
}

func TestCreateValidation(t *testing.T) {
	db := setupTestDB(t)

	err := Create(db, &models.Tenant{Name: "Bad Mail", ContactEmail: "not-an-email"})
	require.Error(t, err)

	err = Create(db, &models.Tenant{Name: "Bad Slug", Slug: "Not Valid"})
	require.Error(t, err)
}

func TestGetByHostname(t *testing.T) {
	db := setupTestDB(t)

	tn := models.Tenant{
		Name: "Kimuraya",
		Domains: []models.TenantDomain{
			{Hostname: "kimuraya.example.com", Active: true},
			{Hostname: "old.example.com", Active: false},
		},
	}
	require.NoError(t, Create(db, &tn))

	got, err := GetByHostname(db, "kimuraya.example.com")
	require.NoError(t, err)
	assert.Equal(t, tn.ID, got.ID)

	// inactive domains do not resolve
	_, err = GetByHostname(db, "old.example.com")
	require.ErrorIs(t, err, ErrTenantNotFound)

	_, err = GetByHostname(db, "unknown.example.com")
	require.ErrorIs(t, err, ErrTenantNotFound)
}

func TestGetDefault(t *testing.T) {
	db := setupTestDB(t)

	_, err := GetDefault(db)
	require.ErrorIs(t, err, ErrNoDefaultTenant)

	require.NoError(t, Create(db, &models.Tenant{Name: "Main", IsDefault: true}))
	require.NoError(t, Create(db, &models.Tenant{Name: "Other"}))

	got, err := GetDefault(db)
	require.NoError(t, err)
	assert.Equal(t, "main", got.Slug)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	tn := models.Tenant{Name: "Kimuraya"}
	require.NoError(t, Create(db, &tn))

	require.NoError(t, Delete(db, tn.ID))
	require.ErrorIs(t, Delete(db, tn.ID), ErrTenantNotFound)

	_, err := Get(db, tn.ID)
	require.ErrorIs(t, err, ErrTenantNotFound)
}
