// Package content resolves editable site content documents stored in the
// settings table against compiled-in default documents, so every rendered
// field has a value in every supported locale.
package content

import (
	"embed"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/db/controller/setting"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/i18n"
)

// Settings keys for the editable content documents and site-wide values.
const (
	KeyHomepageContent    = "homepage_content_section"
	KeyBiologicalsSection = "homepage_biologicals_section"
	KeyHeroImage          = "hero_image_url"
	KeyHeroOverlayOpacity = "hero_overlay_opacity"
	KeyLogo               = "logo_url"
	KeyOfficeAddress      = "office_address"
	KeyWarehouseAddress   = "warehouse_address"
	KeyPhone              = "phone"
	KeyEmail              = "email"
	KeyWhatsApp           = "whatsapp"
)

// DefaultHeroImage is served when no hero image has been uploaded.
const DefaultHeroImage = "/hero-image.png"

// DefaultHeroOverlayOpacity is the overlay opacity percentage applied when the
// setting is absent or unparseable.
const DefaultHeroOverlayOpacity = 40

var (
	// ErrUnknownDocument is returned for keys without a compiled-in default.
	ErrUnknownDocument = errors.New("unknown content document key")
	// ErrEmptyDocument is returned when saving a nil or empty document.
	ErrEmptyDocument = errors.New("content document cannot be empty")
)

//go:embed defaults/*.json
var defaultsFS embed.FS

// defaultDoc parses the compiled-in default document for a key. The embedded
// assets are part of the build, a parse failure is a programmer error.
func defaultDoc(key string) (map[string]any, error) {
	raw, err := defaultsFS.ReadFile("defaults/" + key + ".json")
	if err != nil {
		return nil, ErrUnknownDocument
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Error().Err(err).Str("key", key).Msg("embedded default document is not valid JSON")

		return nil, err
	}

	return doc, nil
}

// storedDoc loads the stored document for a key. A missing row or a value
// that is not valid JSON both count as absent; the latter is logged so the
// bad row can be fixed, but never surfaces to the visitor.
func storedDoc(db *gorm.DB, key string) (map[string]any, error) {
	s, err := setting.Get(db, key)
	if errors.Is(err, setting.ErrSettingNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(s.Value), &doc); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("stored content document is not valid JSON, falling back to defaults")

		return nil, nil
	}

	return doc, nil
}

// mergeInto deep-merges src into dst, src values win. Nested objects are
// merged recursively, everything else is replaced wholesale.
func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		if srcMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				mergeInto(dstMap, srcMap)
				continue
			}

			clone := map[string]any{}
			mergeInto(clone, srcMap)
			dst[k] = clone
			continue
		}

		dst[k] = v
	}
}

// mergeLayers overlays a locale-keyed document onto out. Locale branches are
// applied in reverse fallback order so the most specific locale wins, then
// the non-localized top-level fields.
func mergeLayers(out, doc map[string]any, chain []string) {
	for i := len(chain) - 1; i >= 0; i-- {
		if branch, ok := doc[chain[i]].(map[string]any); ok {
			mergeInto(out, branch)
		}
	}

	for k, v := range doc {
		if i18n.Supported(k) {
			continue
		}

		if srcMap, ok := v.(map[string]any); ok {
			clone := map[string]any{}
			mergeInto(clone, srcMap)
			out[k] = clone
			continue
		}

		out[k] = v
	}
}

// Resolve produces the render-ready document for one locale. Stored content
// overrides the compiled-in default, and within each document the locale
// fallback chain fills fields the more specific locale is missing. Every
// field of the default document is guaranteed present in the result.
func Resolve(db *gorm.DB, key, locale string) (map[string]any, error) {
	def, err := defaultDoc(key)
	if err != nil {
		return nil, err
	}

	stored, err := storedDoc(db, key)
	if err != nil {
		return nil, err
	}

	chain := i18n.Chain(locale)

	out := map[string]any{}
	mergeLayers(out, def, chain)
	if stored != nil {
		mergeLayers(out, stored, chain)
	}

	return out, nil
}

// Load returns the whole locale-keyed document for the admin editor: the
// stored document when present and parseable, otherwise the complete default.
func Load(db *gorm.DB, key string) (map[string]any, error) {
	stored, err := storedDoc(db, key)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return stored, nil
	}

	return defaultDoc(key)
}

// Save overwrites the stored document with doc. The previous document is
// replaced whole, there is no field-level merge, and concurrent saves are
// last-writer-wins.
func Save(db *gorm.DB, key string, doc map[string]any) error {
	if len(doc) == 0 {
		return ErrEmptyDocument
	}
	if _, err := defaultDoc(key); err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = setting.Set(db, key, string(raw), models.SettingTypeJSON)

	return err
}

// SetField loads the stored document (an empty one when nothing is stored),
// sets a single top-level field and saves the result. Used for the image
// upload endpoints that patch one field into a document.
func SetField(db *gorm.DB, key, field string, value any) error {
	doc, err := storedDoc(db, key)
	if err != nil {
		return err
	}
	if doc == nil {
		doc = map[string]any{}
	}

	doc[field] = value

	return Save(db, key, doc)
}

// Hero holds the resolved hero banner settings.
type Hero struct {
	ImageURL       string `json:"imageUrl"`
	OverlayOpacity int    `json:"overlayOpacity"`
}

// HeroSettings resolves the hero image and overlay opacity settings.
// defaultImage overrides the compiled-in fallback image when non-empty.
func HeroSettings(db *gorm.DB, defaultImage string) (Hero, error) {
	if defaultImage == "" {
		defaultImage = DefaultHeroImage
	}

	imageURL, err := setting.GetValue(db, KeyHeroImage, defaultImage)
	if err != nil {
		return Hero{}, err
	}
	if imageURL == "" {
		imageURL = defaultImage
	}

	rawOpacity, err := setting.GetValue(db, KeyHeroOverlayOpacity, strconv.Itoa(DefaultHeroOverlayOpacity))
	if err != nil {
		return Hero{}, err
	}

	opacity, err := strconv.Atoi(rawOpacity)
	if err != nil {
		log.Warn().Str("value", rawOpacity).Msg("hero overlay opacity is not a number, using default")
		opacity = DefaultHeroOverlayOpacity
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 100 {
		opacity = 100
	}

	return Hero{ImageURL: imageURL, OverlayOpacity: opacity}, nil
}

// Contact holds the site-wide contact details shown in the footer and on the
// contact page.
type Contact struct {
	OfficeAddress    string `json:"officeAddress"`
	WarehouseAddress string `json:"warehouseAddress"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	WhatsApp         string `json:"whatsapp"`
}

// ContactSettings resolves the contact detail settings. defaultWhatsApp fills
// the WhatsApp number from configuration when no setting row exists.
func ContactSettings(db *gorm.DB, defaultWhatsApp string) (Contact, error) {
	var c Contact

	var err error
	if c.OfficeAddress, err = setting.GetValue(db, KeyOfficeAddress, ""); err != nil {
		return Contact{}, err
	}
	if c.WarehouseAddress, err = setting.GetValue(db, KeyWarehouseAddress, ""); err != nil {
		return Contact{}, err
	}
	if c.Phone, err = setting.GetValue(db, KeyPhone, ""); err != nil {
		return Contact{}, err
	}
	if c.Email, err = setting.GetValue(db, KeyEmail, ""); err != nil {
		return Contact{}, err
	}
	if c.WhatsApp, err = setting.GetValue(db, KeyWhatsApp, defaultWhatsApp); err != nil {
		return Contact{}, err
	}

	return c, nil
}

// Logo resolves the site logo URL, empty when none has been uploaded.
func Logo(db *gorm.DB) (string, error) {
	return setting.GetValue(db, KeyLogo, "")
}
