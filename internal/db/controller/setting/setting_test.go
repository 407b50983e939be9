package setting

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
	require.NoError(t, db.AutoMigrate(&models.Setting{}))

	return db
}

func TestSetCreatesAndReplaces(t *testing.T) {
	db := setupTestDB(t)

	created, err := Set(db, "phone", "+90 555 000 00 00", models.SettingTypeText)
	require.NoError(t, err)
	assert.Equal(t, "+90 555 000 00 00", created.Value)

	// Writing the same key again replaces the value wholesale.
	updated, err := Set(db, "phone", "+90 555 111 11 11", models.SettingTypeText)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "+90 555 111 11 11", updated.Value)

	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetEmptyKey(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, "", "value", models.SettingTypeText)
	assert.ErrorIs(t, err, ErrSettingKeyEmpty)
}

func TestGetNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := Get(db, "missing")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestGetValueFallback(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, "email", "info@example.com", models.SettingTypeText)
	require.NoError(t, err)
	_, err = Set(db, "fax", "", models.SettingTypeText)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		key      string
		fallback string
		want     string
	}{
		{name: "stored value wins", key: "email", fallback: "fallback@example.com", want: "info@example.com"},
		{name: "missing row falls back", key: "missing", fallback: "default", want: "default"},
		{name: "empty stored value falls back", key: "fax", fallback: "none", want: "none"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GetValue(db, tc.key, tc.fallback)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetAllAsMap(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, "phone", "+90", models.SettingTypeText)
	require.NoError(t, err)
	_, err = Set(db, "logo_url", "/uploads/logo.png", models.SettingTypeImage)
	require.NoError(t, err)

	m, err := GetAllAsMap(db)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, "+90", m["phone"])
	assert.Equal(t, "/uploads/logo.png", m["logo_url"])
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, "phone", "+90", models.SettingTypeText)
	require.NoError(t, err)

	require.NoError(t, Delete(db, "phone"))
	_, err = Get(db, "phone")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	assert.ErrorIs(t, Delete(db, "phone"), ErrSettingNotFound)
}

func TestNilDB(t *testing.T) {
	_, err := Get(nil, "key")
	assert.ErrorIs(t, err, ErrDBNil)
	_, err = Set(nil, "key", "v", models.SettingTypeText)
	assert.ErrorIs(t, err, ErrDBNil)
}
