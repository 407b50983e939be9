// Package panel serves the server-rendered admin pages. The pages load their
// data here and submit changes through the admin JSON API.
package panel

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/config"
	"github.com/garantico/feedsite/internal/web/handler"
	authmw "github.com/garantico/feedsite/internal/web/middleware/auth"
)

// Service is the admin panel handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin panel handler.
var Handler = Service{}

// Init initializes the admin panel handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg

	app.Get("/admin", s.Dashboard)
	app.Get("/admin/products", s.Products)
	app.Get("/admin/inquiries", s.Inquiries)
	app.Get("/admin/hero", s.Hero)
	app.Get("/admin/homepage-content", s.HomepageContent)
	app.Get("/admin/biologicals-section", s.BiologicalsSection)
	app.Get("/admin/menu", s.Menu)
	app.Get("/admin/settings", s.Settings)
	app.Get("/admin/logo", s.Logo)
	app.Get("/admin/content", s.Content)

	return nil
}

// base assembles the data every panel page needs.
func (s *Service) base(c *fiber.Ctx, title, active string) fiber.Map {
	data := fiber.Map{
		"Title":  title,
		"Active": active,
	}

	if user, ok := authmw.CurrentUser(c); ok {
		data["Username"] = user.Username
	}

	return data
}

// fail logs the error and renders a plain 500.
func (s *Service) fail(c *fiber.Ctx, err error, msg string) error {
	log.Error().Err(err).Msg(msg)

	return c.Status(fiber.StatusInternalServerError).SendString("Internal server error")
}
