package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product represents a feed ingredient offered on the site.
// Name and description carry one explicit column per supported locale;
// reading goes through the locale fallback chain. Products are never hard
// deleted from the storefront flow, deactivating sets Active to false.
type Product struct {
	ID         uint64 `gorm:"primaryKey"`
	CategoryID *uint64
	Category   *Category `gorm:"foreignKey:CategoryID;references:ID"`

	Slug string `gorm:"unique;size:255;not null"`

	NameTr string `gorm:"size:255;not null"`
	NameEn string `gorm:"size:255;not null"`
	NameRu string `gorm:"size:255"`
	NameFa string `gorm:"size:255"`
	NameAz string `gorm:"size:255"`
	NameAr string `gorm:"size:255"`

	DescriptionTr string `gorm:"type:text"`
	DescriptionEn string `gorm:"type:text"`
	DescriptionRu string `gorm:"type:text"`
	DescriptionFa string `gorm:"type:text"`
	DescriptionAz string `gorm:"type:text"`
	DescriptionAr string `gorm:"type:text"`

	// Free-form documents edited through the admin panel.
	Specifications   datatypes.JSON
	PackagingOptions datatypes.JSON
	Certificates     datatypes.JSON

	ImageURL string `gorm:"size:500"`

	// Guaranteed analysis values as decimal strings, e.g. "65.00".
	ProteinMin  string `gorm:"size:16"`
	AshMax      string `gorm:"size:16"`
	MoistureMax string `gorm:"size:16"`

	Featured bool `gorm:"default:false"`

	// Active has no column default on purpose: gorm drops zero-valued
	// fields that carry one, so an explicit false would never reach the
	// database.
	Active    bool
	CreatedAt time.Time
}

// Name returns the product name for the given locale, walking the fallback chain.
func (p *Product) Name(locale string) string {
	return localized(map[string]string{
		"tr": p.NameTr,
		"en": p.NameEn,
		"ru": p.NameRu,
		"fa": p.NameFa,
		"az": p.NameAz,
		"ar": p.NameAr,
	}, locale)
}

// Description returns the product description for the given locale, walking
// the fallback chain per field.
func (p *Product) Description(locale string) string {
	return localized(map[string]string{
		"tr": p.DescriptionTr,
		"en": p.DescriptionEn,
		"ru": p.DescriptionRu,
		"fa": p.DescriptionFa,
		"az": p.DescriptionAz,
		"ar": p.DescriptionAr,
	}, locale)
}
