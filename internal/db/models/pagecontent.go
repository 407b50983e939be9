package models

import "time"

// Page content type tags.
const (
	// ContentTypeText is rendered as escaped plain text.
	ContentTypeText = "text"
	// ContentTypeHTML is sanitized and rendered as HTML.
	ContentTypeHTML = "html"
	// ContentTypeMarkdown is rendered to HTML and then sanitized.
	ContentTypeMarkdown = "markdown"
)

// PageContent is one editable content block of a static page (about, contact).
type PageContent struct {
	ID        uint64 `gorm:"primaryKey"`
	Page      string `gorm:"size:100;not null;index"`
	Section   string `gorm:"size:100;not null"`
	ContentTr string `gorm:"type:text"`
	ContentEn string `gorm:"type:text"`
	Type      string `gorm:"size:50;default:'text'"`
	Order     int    `gorm:"column:display_order;default:0"`
	CreatedAt time.Time

	// Active has no column default on purpose: gorm drops zero-valued
	// fields that carry one, so an explicit false would never reach the
	// database.
	Active bool
}

// Content returns the block content for the given locale.
func (p *PageContent) Content(locale string) string {
	return localized(map[string]string{
		"tr": p.ContentTr,
		"en": p.ContentEn,
	}, locale)
}
