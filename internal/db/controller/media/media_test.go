package media

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

	err = db.AutoMigrate(&models.Tenant{}, &models.Media{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name     string
		media    models.Media
		maxItems int
		wantErr  error
	}{
		{
			name:  "valid media item",
			media: models.Media{TenantID: 1, Key: "kimuraya/a.jpg", FileName: "a.jpg"},
		},
		{
			name:    "empty key rejected",
			media:   models.Media{TenantID: 1},
			wantErr: ErrKeyEmpty,
		},
		{
			name:     "under the limit",
			media:    models.Media{TenantID: 1, Key: "kimuraya/b.jpg"},
			maxItems: 5,
		},
		{
			name:     "limit reached",
			media:    models.Media{TenantID: 1, Key: "kimuraya/c.jpg"},
			maxItems: 2,
			wantErr:  ErrLimitReached,
		},
		{
			name:     "limit is per tenant",
			media:    models.Media{TenantID: 2, Key: "other/a.jpg"},
			maxItems: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Create(db, &tt.media, tt.maxItems)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, tt.media.ID)
		})
	}
}

func TestCreateNilDB(t *testing.T) {
	err := Create(nil, &models.Media{Key: "x"}, 0)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestGetByKey(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Create(db, &models.Media{TenantID: 1, Key: "kimuraya/a.jpg", FileName: "a.jpg"}, 0))

	got, err := GetByKey(db, 1, "kimuraya/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", got.FileName)

	// key lookups are tenant scoped
	_, err = GetByKey(db, 2, "kimuraya/a.jpg")
	require.ErrorIs(t, err, ErrMediaNotFound)

	_, err = GetByKey(db, 1, "")
	require.ErrorIs(t, err, ErrKeyEmpty)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	m := models.Media{TenantID: 1, Key: "kimuraya/a.jpg"}
	require.NoError(t, Create(db, &m, 0))

	// wrong tenant cannot delete
	require.ErrorIs(t, Delete(db, 2, m.ID), ErrMediaNotFound)

	require.NoError(t, Delete(db, 1, m.ID))
	require.ErrorIs(t, Delete(db, 1, m.ID), ErrMediaNotFound)
}

func TestList(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Create(db, &models.Media{TenantID: 1, Key: "kimuraya/a.jpg"}, 0))
	require.NoError(t, Create(db, &models.Media{TenantID: 1, Key: "kimuraya/b.jpg"}, 0))
	require.NoError(t, Create(db, &models.Media{TenantID: 2, Key: "other/a.jpg"}, 0))

	items, err := List(db, 1)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
