// Package site serves the public, locale-prefixed website pages.
package site

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/config"
	"github.com/garantico/feedsite/internal/content"
	"github.com/garantico/feedsite/internal/db/controller/navigation"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/i18n"
	"github.com/garantico/feedsite/internal/web/handler"
)

// Service is the public site handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the public site handler.
var Handler = Service{}

// Init initializes the public site handler. The locale-prefixed routes are
// registered last in the app so /admin, /api and the static mounts win.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg

	// bare root: pick the best locale from the Accept-Language header
	app.Get(handler.RootPath, func(c *fiber.Ctx) error {
		return c.Redirect("/" + i18n.Match(c.Get(fiber.HeaderAcceptLanguage)))
	})

	app.Get("/:locale", s.Home)
	app.Get("/:locale/about", s.About)
	app.Get("/:locale/products", s.Products)
	app.Get("/:locale/products/:slug", s.ProductDetail)
	app.Get("/:locale/contact", s.Contact)

	return nil
}

// locale validates the locale path segment. A path without a supported
// locale prefix redirects to the same path under the best-matching locale
// and returns ok=false.
func (s *Service) locale(c *fiber.Ctx) (string, bool) {
	raw := c.Params("locale")
	if i18n.Supported(raw) {
		return raw, true
	}

	matched := i18n.Match(c.Get(fiber.HeaderAcceptLanguage))
	if err := c.Redirect("/" + matched + c.Path()); err != nil {
		log.Error().Err(err).Msg("locale redirect failed")
	}

	return "", false
}

// navView is one rendered menu entry.
type navView struct {
	Label string
	Href  string
}

// localeView is one entry of the language switcher.
type localeView struct {
	Code   string
	Name   string
	Href   string
	Active bool
}

// baseData assembles the data every public page needs: menu, contact details,
// logo and the language switcher for the current path.
func (s *Service) baseData(c *fiber.Ctx, locale, page string) (fiber.Map, error) {
	items, err := navigation.ListMenu(s.db, models.MenuMain)
	if err != nil {
		return nil, err
	}

	menu := make([]navView, 0, len(items))
	for _, item := range items {
		menu = append(menu, navView{
			Label: item.Label(locale),
			Href:  "/" + locale + item.Href,
		})
	}

	contact, err := content.ContactSettings(s.db, s.cfg.Site.WhatsAppNumber)
	if err != nil {
		return nil, err
	}

	logo, err := content.Logo(s.db)
	if err != nil {
		return nil, err
	}

	path := ""
	if page != "" {
		path = "/" + page
	}

	var locales []localeView
	for _, code := range i18n.Locales() {
		locales = append(locales, localeView{
			Code:   code,
			Name:   i18n.DisplayName(code),
			Href:   "/" + code + path,
			Active: code == locale,
		})
	}

	return fiber.Map{
		"Locale":  locale,
		"RTL":     i18n.RTL(locale),
		"Menu":    menu,
		"Contact": contact,
		"Logo":    logo,
		"Locales": locales,
	}, nil
}

// fail logs the error and renders a plain 500.
func (s *Service) fail(c *fiber.Ctx, err error, msg string) error {
	log.Error().Err(err).Msg(msg)

	return c.Status(fiber.StatusInternalServerError).SendString("Internal server error")
}
