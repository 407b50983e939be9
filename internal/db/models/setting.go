// Package models contains database model definitions.
package models

import "time"

// Setting value type tags.
const (
	// SettingTypeText marks a plain text value.
	SettingTypeText = "text"
	// SettingTypeJSON marks a JSON encoded content document.
	SettingTypeJSON = "json"
	// SettingTypeImage marks a value holding an uploaded image URL.
	SettingTypeImage = "image"
)

// Setting represents one site configuration value stored in the database.
// JSON typed settings hold whole content documents; saving always replaces
// the stored value in full.
type Setting struct {
	ID        uint64 `gorm:"primaryKey"`
	Key       string `gorm:"unique;size:255;not null"`
	Value     string `gorm:"type:text"`
	Type      string `gorm:"size:50;default:'text'"`
	UpdatedAt time.Time
}
