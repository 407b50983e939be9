package category

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
	require.NoError(t, db.AutoMigrate(&models.Category{}))

	return db
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Create(db, &models.Category{Slug: "fish-meals", NameTr: "Balık Unları", NameEn: "Fish Meals"}))
	err := Create(db, &models.Category{Slug: "fish-meals", NameTr: "Diğer", NameEn: "Other"})
	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestListOrdersByDisplayOrder(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Create(db, &models.Category{Slug: "oils", NameTr: "Yağlar", NameEn: "Oils", Order: 2}))
	require.NoError(t, Create(db, &models.Category{Slug: "meals", NameTr: "Unlar", NameEn: "Meals", Order: 1}))

	categories, err := List(db)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "meals", categories[0].Slug)
	assert.Equal(t, "oils", categories[1].Slug)
}

func TestUpdateKeepsSlug(t *testing.T) {
	db := setupTestDB(t)

	c := &models.Category{Slug: "meals", NameTr: "Unlar", NameEn: "Meals"}
	require.NoError(t, Create(db, c))

	src := &models.Category{Slug: "renamed", NameTr: "Balık Unları", NameEn: "Fish Meals", Order: 3, Featured: true}
	require.NoError(t, Update(db, c.ID, src))

	categories, err := List(db)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "meals", categories[0].Slug)
	assert.Equal(t, "Fish Meals", categories[0].NameEn)
	assert.True(t, categories[0].Featured)

	assert.ErrorIs(t, Update(db, 99, src), ErrCategoryNotFound)
}
