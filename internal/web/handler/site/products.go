package site

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/garantico/feedsite/internal/db/controller/category"
	"github.com/garantico/feedsite/internal/db/controller/product"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/web/handler"
)

// productView is the render-ready shape of a product for one locale.
type productView struct {
	Slug             string
	Name             string
	Description      string
	ImageURL         string
	Category         string
	Featured         bool
	ProteinMin       string
	AshMax           string
	MoistureMax      string
	Specifications   map[string]string
	PackagingOptions []string
	Certificates     []string
}

func newProductView(p *models.Product, locale string) productView {
	v := productView{
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
		v.Category = p.Category.Name(locale)
	}

	// the JSON columns are optional, a decode failure just hides the block
	if len(p.Specifications) > 0 {
		_ = json.Unmarshal(p.Specifications, &v.Specifications)
	}
	if len(p.PackagingOptions) > 0 {
		_ = json.Unmarshal(p.PackagingOptions, &v.PackagingOptions)
	}
	if len(p.Certificates) > 0 {
		_ = json.Unmarshal(p.Certificates, &v.Certificates)
	}

	return v
}

// Products renders the product listing page.
func (s *Service) Products(c *fiber.Ctx) error {
	locale, ok := s.locale(c)
	if !ok {
		return nil
	}

	data, err := s.baseData(c, locale, "products")
	if err != nil {
		return s.fail(c, err, "failed to build products base data")
	}

	products, err := product.ListActive(s.db)
	if err != nil {
		return s.fail(c, err, "failed to list products")
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(&p, locale))
	}

	categories, err := category.List(s.db)
	if err != nil {
		return s.fail(c, err, "failed to list categories")
	}

	type categoryView struct {
		Slug string
		Name string
	}

	categoryViews := make([]categoryView, 0, len(categories))
	for _, cat := range categories {
		categoryViews = append(categoryViews, categoryView{Slug: cat.Slug, Name: cat.Name(locale)})
	}

	data["Products"] = views
	data["Categories"] = categoryViews

	return c.Render("products", data, handler.BaseLayout)
}

// ProductDetail renders one product page, 404 for unknown or inactive slugs.
func (s *Service) ProductDetail(c *fiber.Ctx) error {
	locale, ok := s.locale(c)
	if !ok {
		return nil
	}

	p, err := product.GetBySlug(s.db, c.Params("slug"))
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Not found")
		}

		return s.fail(c, err, "failed to load product")
	}

	data, err := s.baseData(c, locale, "products/"+p.Slug)
	if err != nil {
		return s.fail(c, err, "failed to build product base data")
	}

	data["Product"] = newProductView(p, locale)
	data["ProductID"] = p.ID

	return c.Render("product", data, handler.BaseLayout)
}
