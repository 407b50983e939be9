package navigation

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
	require.NoError(t, db.AutoMigrate(&models.NavigationItem{}))

	return db
}

func TestListMenuEmptyTableReturnsDefaults(t *testing.T) {
	db := setupTestDB(t)

	items, err := ListMenu(db, models.MenuMain)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "Ana Sayfa", items[0].LabelTr)
	assert.Equal(t, "/contact", items[3].Href)

	// The top menu has no compiled-in entries.
	items, err = ListMenu(db, models.MenuTop)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListMenuStoredRowsReplaceDefaults(t *testing.T) {
	db := setupTestDB(t)

	visible := &models.NavigationItem{LabelTr: "Ürünler", LabelEn: "Products", Href: "/products", Order: 1, Active: true}
	require.NoError(t, Create(db, visible))
	hidden := &models.NavigationItem{LabelTr: "Gizli", LabelEn: "Hidden", Href: "/hidden", Order: 2, Active: false}
	require.NoError(t, Create(db, hidden))

	// Once any row exists the defaults no longer apply, even partially.
	items, err := ListMenu(db, models.MenuMain)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "/products", items[0].Href)
}

func TestListMenuOrdersByDisplayOrder(t *testing.T) {
	db := setupTestDB(t)

	second := &models.NavigationItem{LabelTr: "B", LabelEn: "B", Href: "/b", Order: 2, Active: true}
	require.NoError(t, Create(db, second))
	first := &models.NavigationItem{LabelTr: "A", LabelEn: "A", Href: "/a", Order: 1, Active: true}
	require.NoError(t, Create(db, first))

	items, err := ListMenu(db, models.MenuMain)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "/a", items[0].Href)
	assert.Equal(t, "/b", items[1].Href)
}

func TestCreatePersistsActiveFlag(t *testing.T) {
	db := setupTestDB(t)

	inactive := &models.NavigationItem{LabelTr: "Gizli", LabelEn: "Hidden", Href: "/hidden", Active: false}
	require.NoError(t, Create(db, inactive))
	active := &models.NavigationItem{LabelTr: "Açık", LabelEn: "Shown", Href: "/shown", Active: true}
	require.NoError(t, Create(db, active))

	var got models.NavigationItem
	require.NoError(t, db.First(&got, inactive.ID).Error)
	assert.False(t, got.Active)
	got = models.NavigationItem{}
	require.NoError(t, db.First(&got, active.ID).Error)
	assert.True(t, got.Active)
}

func TestCreateDefaultsToMainMenu(t *testing.T) {
	db := setupTestDB(t)

	item := &models.NavigationItem{LabelTr: "X", LabelEn: "X", Href: "/x", Active: true}
	require.NoError(t, Create(db, item))
	assert.Equal(t, models.MenuMain, item.Menu)
}

func TestUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)

	item := &models.NavigationItem{LabelTr: "Eski", LabelEn: "Old", Href: "/old", Order: 1, Active: true}
	require.NoError(t, Create(db, item))

	src := &models.NavigationItem{LabelTr: "Yeni", LabelEn: "New", Href: "/new", Order: 5, Active: false}
	require.NoError(t, Update(db, item.ID, src))

	items, err := List(db)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Yeni", items[0].LabelTr)
	assert.Equal(t, "/new", items[0].Href)
	assert.False(t, items[0].Active)

	require.NoError(t, Delete(db, item.ID))
	assert.ErrorIs(t, Delete(db, item.ID), ErrItemNotFound)
	assert.ErrorIs(t, Update(db, item.ID, src), ErrItemNotFound)
}

func TestDefaultItemsReturnsCopy(t *testing.T) {
	items := DefaultItems()
	items[0].LabelTr = "changed"
	assert.Equal(t, "Ana Sayfa", DefaultItems()[0].LabelTr)
}
