package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/garantico/feedsite/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	return db
}

func TestUpsertCreatesAndReplacesPassword(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Upsert(db, "admin", models.HashPassword("first")))

	u, err := GetByUsername(db, "admin")
	require.NoError(t, err)
	assert.True(t, u.VerifyPassword("first"))

	require.NoError(t, Upsert(db, "admin", models.HashPassword("second")))

	u, err = GetByUsername(db, "admin")
	require.NoError(t, err)
	assert.False(t, u.VerifyPassword("first"))
	assert.True(t, u.VerifyPassword("second"))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertEmptyUsername(t *testing.T) {
	db := setupTestDB(t)

	assert.ErrorIs(t, Upsert(db, "", "hash"), ErrUsernameEmpty)
}

func TestGetByUsernameNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := GetByUsername(db, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestTouchLastLogin(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Upsert(db, "admin", models.HashPassword("pw")))

	u, err := GetByUsername(db, "admin")
	require.NoError(t, err)
	require.Nil(t, u.LastLogin)

	require.NoError(t, TouchLastLogin(db, u.ID))

	u, err = GetByUsername(db, "admin")
	require.NoError(t, err)
	assert.NotNil(t, u.LastLogin)
}
