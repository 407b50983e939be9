// Package navigation provides CRUD operations for menu items and the
// compiled-in default menu used when the table is empty.
package navigation

import (
	"errors"

	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/db/models"
)

var (
	// ErrItemNotFound is returned when a navigation item is not found.
	ErrItemNotFound = errors.New("navigation item not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// defaultItems is the menu rendered when no navigation rows exist yet.
// Hrefs are locale-relative, the renderer prefixes the active locale.
var defaultItems = []models.NavigationItem{
	{LabelTr: "Ana Sayfa", LabelEn: "Home", Href: "/", Order: 1, Menu: models.MenuMain, Active: true},
	{LabelTr: "Hakkımızda", LabelEn: "About Us", Href: "/about", Order: 2, Menu: models.MenuMain, Active: true},
	{LabelTr: "Ürünler", LabelEn: "Products", Href: "/products", Order: 3, Menu: models.MenuMain, Active: true},
	{LabelTr: "İletişim", LabelEn: "Contact", Href: "/contact", Order: 4, Menu: models.MenuMain, Active: true},
}

// DefaultItems returns a copy of the compiled-in default menu.
func DefaultItems() []models.NavigationItem {
	out := make([]models.NavigationItem, len(defaultItems))
	copy(out, defaultItems)

	return out
}

// List returns all navigation items ordered for the admin panel.
func List(db *gorm.DB) ([]models.NavigationItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.NavigationItem
	result := db.Order("display_order ASC, id ASC").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// ListMenu returns the active items of one menu section for rendering.
// An empty table yields the compiled-in defaults so a fresh install still
// renders a usable menu.
func ListMenu(db *gorm.DB, menu string) ([]models.NavigationItem, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.NavigationItem{}).Count(&count).Error; err != nil {
		return nil, err
	}

	if count == 0 {
		var out []models.NavigationItem
		for _, item := range DefaultItems() {
			if item.Menu == menu {
				out = append(out, item)
			}
		}

		return out, nil
	}

	var items []models.NavigationItem
	result := db.Where("menu = ? AND active = ?", menu, true).
		Order("display_order ASC, id ASC").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// Create inserts a new navigation item.
func Create(db *gorm.DB, item *models.NavigationItem) error {
	if db == nil {
		return ErrDBNil
	}

	if item.Menu == "" {
		item.Menu = models.MenuMain
	}

	return db.Create(item).Error
}

// Update applies editable fields to the item with the given id.
func Update(db *gorm.DB, id uint64, src *models.NavigationItem) error {
	if db == nil {
		return ErrDBNil
	}

	var existing models.NavigationItem
	result := db.First(&existing, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return result.Error
	}

	existing.LabelTr = src.LabelTr
	existing.LabelEn = src.LabelEn
	existing.Href = src.Href
	existing.Order = src.Order
	existing.Active = src.Active

	return db.Save(&existing).Error
}

// Delete removes a navigation item.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.NavigationItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}
