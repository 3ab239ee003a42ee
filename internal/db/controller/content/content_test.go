package content

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

	err = db.AutoMigrate(&models.SiteContent{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		tenantID      uint64
		page          string
		seed          *models.SiteContent
		expectedError error
		expectedData  string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			tenantID:      1,
			page:          DefaultPage,
			expectedError: ErrDBNil,
		},
		{
			name:          "document not found",
			dbParam:       db,
			tenantID:      1,
			page:          DefaultPage,
			expectedError: ErrContentNotFound,
		},
		{
			name:     "successful get",
			dbParam:  db,
			tenantID: 1,
			page:     DefaultPage,
			seed: &models.SiteContent{
				TenantID: 1,
				Page:     DefaultPage,
				Data:     []byte(`{"hero":{"textFields":{"title":"Kimuraya"}}}`),
			},
			expectedData: `{"hero":{"textFields":{"title":"Kimuraya"}}}`,
		},
		{
			name:     "wrong tenant",
			dbParam:  db,
			tenantID: 2,
			page:     DefaultPage,
			seed: &models.SiteContent{
				TenantID: 1,
				Page:     DefaultPage,
				Data:     []byte(`{}`),
			},
			expectedError: ErrContentNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM site_contents")
			}

			if tc.seed != nil {
				require.NoError(t, tc.dbParam.Create(tc.seed).Error)
			}

			doc, err := Get(tc.dbParam, tc.tenantID, tc.page)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, doc)
			} else {
				require.NoError(t, err)
				require.NotNil(t, doc)
				assert.Equal(t, tc.expectedData, string(doc.Data))
			}
		})
	}
}

func TestGetOrSeed(t *testing.T) {
	db := setupTestDB(t)

	def := []byte(`{"hero":{"textFields":{"title":"Default"}}}`)

	// First read seeds the default document.
	doc, err := GetOrSeed(db, 1, DefaultPage, def)
	require.NoError(t, err)
	assert.Equal(t, string(def), string(doc.Data))

	// Replace the stored document, then read again: no re-seeding.
	_, err = Set(db, 1, DefaultPage, []byte(`{"hero":{}}`), nil)
	require.NoError(t, err)

	doc, err = GetOrSeed(db, 1, DefaultPage, def)
	require.NoError(t, err)
	assert.Equal(t, `{"hero":{}}`, string(doc.Data))

	// Invalid default document is rejected.
	_, err = GetOrSeed(db, 2, DefaultPage, []byte(`not json`))
	require.ErrorIs(t, err, ErrInvalidJSON)
}

func TestSet(t *testing.T) {
	db := setupTestDB(t)

	userID := uint64(7)

	// Create on first write.
	doc, err := Set(db, 1, DefaultPage, []byte(`{"v":1}`), &userID)
	require.NoError(t, err)
	assert.Equal(t, `{"v":1}`, string(doc.Data))
	require.NotNil(t, doc.UpdatedByID)
	assert.Equal(t, userID, *doc.UpdatedByID)

	// Full replacement on second write, same row.
	doc2, err := Set(db, 1, DefaultPage, []byte(`{"v":2}`), nil)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, doc2.ID)
	assert.Equal(t, `{"v":2}`, string(doc2.Data))

	// Invalid JSON is rejected before touching the row.
	_, err = Set(db, 1, DefaultPage, []byte(`{broken`), nil)
	require.ErrorIs(t, err, ErrInvalidJSON)

	doc3, err := Get(db, 1, DefaultPage)
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(doc3.Data))
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, 1, DefaultPage, []byte(`{}`), nil)
	require.NoError(t, err)

	require.NoError(t, Delete(db, 1, DefaultPage))
	require.ErrorIs(t, Delete(db, 1, DefaultPage), ErrContentNotFound)
}
