package models

import "time"

// Category groups products for the storefront. Read-only from the public
// pages, edited through the admin panel.
type Category struct {
	ID        uint64 `gorm:"primaryKey"`
	Slug      string `gorm:"unique;size:255;not null"`
	NameTr    string `gorm:"size:255;not null"`
	NameEn    string `gorm:"size:255;not null"`
	Order     int    `gorm:"column:display_order;default:0"`
	Featured  bool   `gorm:"default:false"`
	CreatedAt time.Time
}

// Name returns the category name for the given locale.
func (c *Category) Name(locale string) string {
	return localized(map[string]string{
		"tr": c.NameTr,
		"en": c.NameEn,
	}, locale)
}
