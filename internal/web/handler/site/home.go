package site

import (
	"github.com/gofiber/fiber/v2"

	"github.com/garantico/feedsite/internal/content"
	"github.com/garantico/feedsite/internal/db/controller/product"
	"github.com/garantico/feedsite/internal/web/handler"
)

// Home renders the homepage: hero banner, editable content section,
// biologicals promo and the featured products.
func (s *Service) Home(c *fiber.Ctx) error {
	locale, ok := s.locale(c)
	if !ok {
		return nil
	}

	data, err := s.baseData(c, locale, "")
	if err != nil {
		return s.fail(c, err, "failed to build homepage base data")
	}

	hero, err := content.HeroSettings(s.db, s.cfg.Site.DefaultHeroImage)
	if err != nil {
		return s.fail(c, err, "failed to resolve hero settings")
	}

	contentSection, err := content.Resolve(s.db, content.KeyHomepageContent, locale)
	if err != nil {
		return s.fail(c, err, "failed to resolve homepage content section")
	}

	biologicals, err := content.Resolve(s.db, content.KeyBiologicalsSection, locale)
	if err != nil {
		return s.fail(c, err, "failed to resolve biologicals section")
	}

	products, err := product.ListActive(s.db)
	if err != nil {
		return s.fail(c, err, "failed to list products for homepage")
	}

	var featured []productView
	for _, p := range products {
		if !p.Featured {
			continue
		}

		featured = append(featured, newProductView(&p, locale))
	}

	data["Hero"] = hero
	data["Content"] = contentSection
	data["Biologicals"] = biologicals
	data["BiologicalsEnabled"] = biologicals["enabled"] != false
	data["FeaturedProducts"] = featured

	return c.Render("home", data, handler.BaseLayout)
}
