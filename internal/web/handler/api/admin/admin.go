// Package admin serves the authenticated JSON API behind the panel: product,
// category, menu, settings, content document and inquiry management.
package admin

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/config"
	"github.com/garantico/feedsite/internal/web/handler"
	authmw "github.com/garantico/feedsite/internal/web/middleware/auth"
)

// Service is the admin API handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the admin API handler.
var Handler = Service{}

// Init initializes the admin API handler. Every route requires a valid
// session, unauthenticated requests get a 401 envelope.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Route("/api/admin", func(router fiber.Router) {
		router.Use(authmw.API)

		router.Get("/products", s.ListProducts)
		router.Post("/products", s.CreateProduct)
		router.Put("/products/:id", s.UpdateProduct)
		router.Delete("/products/:id", s.DeleteProduct)
		router.Post("/products/:id/image", s.UploadProductImage)

		router.Get("/categories", s.ListCategories)
		router.Post("/categories", s.CreateCategory)
		router.Put("/categories/:id", s.UpdateCategory)

		router.Get("/menu", s.ListMenu)
		router.Post("/menu", s.CreateMenuItem)
		router.Put("/menu/:id", s.UpdateMenuItem)
		router.Delete("/menu/:id", s.DeleteMenuItem)

		router.Get("/settings", s.GetSettings)
		router.Put("/settings", s.SaveSettings)
		router.Post("/logo", s.UploadLogo)

		router.Get("/hero", s.GetHero)
		router.Put("/hero", s.SaveHero)
		router.Post("/hero", s.UploadHeroImage)

		router.Get("/homepage-content", s.GetHomepageContent)
		router.Put("/homepage-content", s.SaveHomepageContent)

		router.Get("/biologicals-section", s.GetBiologicalsSection)
		router.Put("/biologicals-section", s.SaveBiologicalsSection)
		router.Post("/biologicals-section", s.UploadBiologicalsImage)

		router.Get("/content", s.ListContent)
		router.Post("/content", s.CreateContent)
		router.Put("/content/:id", s.UpdateContent)
		router.Delete("/content/:id", s.DeleteContent)

		router.Get("/inquiries", s.ListInquiries)
		router.Put("/inquiries/:id/status", s.UpdateInquiryStatus)
	})

	return nil
}
