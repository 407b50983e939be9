// Package public serves the unauthenticated JSON API: product and category
// listings and inquiry submission.
package public

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/config"
	"github.com/garantico/feedsite/internal/db/controller/category"
	"github.com/garantico/feedsite/internal/db/controller/inquiry"
	"github.com/garantico/feedsite/internal/db/controller/product"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/i18n"
	"github.com/garantico/feedsite/internal/web/handler"
)

// Service is the public API handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the public API handler.
var Handler = Service{}

// Init initializes the public API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Route("/api", func(router fiber.Router) {
		router.Get("/products", s.Products)
		router.Get("/categories", s.Categories)
		router.Post("/inquiries", s.CreateInquiry)
	})

	return nil
}

// productJSON is the public API shape of a product.
type productJSON struct {
	ID          uint64 `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Featured    bool   `json:"featured"`
	ProteinMin  string `json:"proteinMin,omitempty"`
	AshMax      string `json:"ashMax,omitempty"`
	MoistureMax string `json:"moistureMax,omitempty"`
}

// Products lists the active products, localized by the locale query parameter.
func (s *Service) Products(c *fiber.Ctx) error {
	locale := i18n.Normalize(c.Query("locale", i18n.DefaultLocale))

	products, err := product.ListActive(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	out := make([]productJSON, 0, len(products))
	for _, p := range products {
		item := productJSON{
			ID:          p.ID,
			Slug:        p.Slug,
			Name:        p.Name(locale),
			Description: p.Description(locale),
			ImageURL:    p.ImageURL,
			Featured:    p.Featured,
			ProteinMin:  p.ProteinMin,
			AshMax:      p.AshMax,
			MoistureMax: p.MoistureMax,
		}
		if p.Category != nil {
			item.Category = p.Category.Name(locale)
		}

		out = append(out, item)
	}

	return handler.JSONData(c, out)
}

// Categories lists all categories, localized by the locale query parameter.
func (s *Service) Categories(c *fiber.Ctx) error {
	locale := i18n.Normalize(c.Query("locale", i18n.DefaultLocale))

	categories, err := category.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list categories")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	type categoryJSON struct {
		ID   uint64 `json:"id"`
		Slug string `json:"slug"`
		Name string `json:"name"`
	}

	out := make([]categoryJSON, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryJSON{ID: cat.ID, Slug: cat.Slug, Name: cat.Name(locale)})
	}

	return handler.JSONData(c, out)
}

// inquiryRequest is the inquiry submission body.
type inquiryRequest struct {
	ProductID        *uint64 `json:"productId"`
	CustomerName     string  `json:"customerName" validate:"required,max=255"`
	Email            string  `json:"email" validate:"required,email,max=255"`
	Phone            string  `json:"phone" validate:"max=50"`
	Company          string  `json:"company" validate:"max=255"`
	Quantity         string  `json:"quantity" validate:"max=100"`
	DeliveryLocation string  `json:"deliveryLocation"`
	Message          string  `json:"message"`
	Language         string  `json:"language"`
}

// CreateInquiry stores a quote request. Every new inquiry starts as pending.
func (s *Service) CreateInquiry(c *fiber.Ctx) error {
	req := new(inquiryRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		errors.As(err, &validationErrors)
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return handler.JSONError(c, fiber.StatusBadRequest,
				"Field '"+ve.Field()+"' failed validation tag '"+ve.Tag()+"'")
		}

		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	inq := &models.ProductInquiry{
		ProductID:        req.ProductID,
		CustomerName:     req.CustomerName,
		Email:            req.Email,
		Company:          req.Company,
		Quantity:         req.Quantity,
		DeliveryLocation: req.DeliveryLocation,
		Message:          req.Message,
		Language:         req.Language,
	}
	if req.Phone != "" {
		inq.Phone = &req.Phone
	}

	if err := inquiry.Create(s.db, inq); err != nil {
		log.Error().Err(err).Msg("failed to store inquiry")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	log.Info().Uint64("id", inq.ID).Str("email", inq.Email).Msg("inquiry received")

	return handler.JSONCreated(c, fiber.Map{"id": inq.ID})
}
