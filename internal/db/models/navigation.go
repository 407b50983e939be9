package models

// Navigation menu sections.
const (
	// MenuTop is the slim utility bar above the header.
	MenuTop = "top"
	// MenuMain is the primary site navigation.
	MenuMain = "main"
)

// NavigationItem is one entry of the rendered site navigation.
// When the table is empty the storefront falls back to a compiled-in
// default list, so a fresh install renders a usable menu.
type NavigationItem struct {
	ID      uint64 `gorm:"primaryKey"`
	LabelTr string `gorm:"size:255;not null"`
	LabelEn string `gorm:"size:255;not null"`
	Href    string `gorm:"size:500;not null"`
	Order int    `gorm:"column:display_order;default:0"`
	Menu  string `gorm:"size:20;default:'main'"`

	// Active has no column default on purpose: gorm drops zero-valued
	// fields that carry one, so an explicit false would never reach the
	// database.
	Active bool
}

// Label returns the navigation label for the given locale.
func (n *NavigationItem) Label(locale string) string {
	return localized(map[string]string{
		"tr": n.LabelTr,
		"en": n.LabelEn,
	}, locale)
}
