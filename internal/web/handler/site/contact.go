package site

import (
	"github.com/gofiber/fiber/v2"

	"github.com/garantico/feedsite/internal/db/controller/product"
	"github.com/garantico/feedsite/internal/web/handler"
)

// Contact renders the contact page with the inquiry form.
func (s *Service) Contact(c *fiber.Ctx) error {
	locale, ok := s.locale(c)
	if !ok {
		return nil
	}

	data, err := s.baseData(c, locale, "contact")
	if err != nil {
		return s.fail(c, err, "failed to build contact base data")
	}

	// the inquiry form lets the visitor pick a product
	products, err := product.ListActive(s.db)
	if err != nil {
		return s.fail(c, err, "failed to list products for contact form")
	}

	type option struct {
		ID   uint64
		Name string
	}

	options := make([]option, 0, len(products))
	for _, p := range products {
		options = append(options, option{ID: p.ID, Name: p.Name(locale)})
	}

	data["ProductOptions"] = options

	return c.Render("contact", data, handler.BaseLayout)
}
