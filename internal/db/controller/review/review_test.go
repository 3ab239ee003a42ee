package review

import (
	"testing"
	"time"

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

	err = db.AutoMigrate(&models.Review{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestReply(t *testing.T) {
	db := setupTestDB(t)

	r := models.Review{TenantID: 1, Author: "Tanaka", Rating: 5, Text: "great motsunabe", PostedAt: time.Now()}
	require.NoError(t, db.Create(&r).Error)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got, err := Reply(db, 1, r.ID, "thank you for visiting", now)
	require.NoError(t, err)
	assert.Equal(t, "thank you for visiting", got.Reply)
	require.NotNil(t, got.RepliedAt)
	assert.True(t, got.RepliedAt.Equal(now))

	// empty reply rejected
	_, err = Reply(db, 1, r.ID, "", now)
	require.ErrorIs(t, err, ErrReplyEmpty)

	// wrong tenant cannot reply
	_, err = Reply(db, 2, r.ID, "hijack", now)
	require.ErrorIs(t, err, ErrReviewNotFound)
}

func TestSeedIfEmpty(t *testing.T) {
	db := setupTestDB(t)

	mock := []models.Review{
		{Author: "Tanaka", Rating: 5, Text: "excellent", PostedAt: time.Now()},
		{Author: "Suzuki", Rating: 3, Text: "decent", PostedAt: time.Now()},
	}

	require.NoError(t, SeedIfEmpty(db, 1, mock))
	require.NoError(t, SeedIfEmpty(db, 1, mock))

	reviews, err := GetAll(db, 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
