package panel

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/garantico/feedsite/internal/content"
	"github.com/garantico/feedsite/internal/db/controller/category"
	"github.com/garantico/feedsite/internal/db/controller/inquiry"
	"github.com/garantico/feedsite/internal/db/controller/navigation"
	"github.com/garantico/feedsite/internal/db/controller/pagecontent"
	"github.com/garantico/feedsite/internal/db/controller/product"
	"github.com/garantico/feedsite/internal/db/controller/setting"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/web/handler"
)

// Dashboard renders the panel landing page with row counts.
func (s *Service) Dashboard(c *fiber.Ctx) error {
	data := s.base(c, "Dashboard", "dashboard")

	var productCount, categoryCount, pendingCount, inquiryCount int64
	if err := s.db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return s.fail(c, err, "failed to count products")
	}
	if err := s.db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return s.fail(c, err, "failed to count categories")
	}
	if err := s.db.Model(&models.ProductInquiry{}).Count(&inquiryCount).Error; err != nil {
		return s.fail(c, err, "failed to count inquiries")
	}
	err := s.db.Model(&models.ProductInquiry{}).
		Where("status = ?", models.InquiryStatusPending).
		Count(&pendingCount).Error
	if err != nil {
		return s.fail(c, err, "failed to count pending inquiries")
	}

	data["ProductCount"] = productCount
	data["CategoryCount"] = categoryCount
	data["InquiryCount"] = inquiryCount
	data["PendingCount"] = pendingCount

	return c.Render("admin/dashboard", data, handler.AdminLayout)
}

// Products renders the product management page.
func (s *Service) Products(c *fiber.Ctx) error {
	data := s.base(c, "Products", "products")

	products, err := product.ListAll(s.db)
	if err != nil {
		return s.fail(c, err, "failed to list products")
	}

	categories, err := category.List(s.db)
	if err != nil {
		return s.fail(c, err, "failed to list categories")
	}

	data["Products"] = products
	data["Categories"] = categories

	return c.Render("admin/products", data, handler.AdminLayout)
}

// Inquiries renders the inquiry list, filtered by the status query parameter.
func (s *Service) Inquiries(c *fiber.Ctx) error {
	data := s.base(c, "Inquiries", "inquiries")

	status := c.Query("status")
	inquiries, err := inquiry.List(s.db, status)
	if err != nil {
		// a bad filter just falls back to the unfiltered list
		inquiries, err = inquiry.List(s.db, "")
		if err != nil {
			return s.fail(c, err, "failed to list inquiries")
		}
		status = ""
	}

	data["Inquiries"] = inquiries
	data["Status"] = status
	data["Statuses"] = models.InquiryStatuses

	return c.Render("admin/inquiries", data, handler.AdminLayout)
}

// Hero renders the hero banner editor.
func (s *Service) Hero(c *fiber.Ctx) error {
	data := s.base(c, "Hero Banner", "hero")

	hero, err := content.HeroSettings(s.db, s.cfg.Site.DefaultHeroImage)
	if err != nil {
		return s.fail(c, err, "failed to resolve hero settings")
	}

	data["Hero"] = hero

	return c.Render("admin/hero", data, handler.AdminLayout)
}

// documentPage renders a whole-document JSON editor.
func (s *Service) documentPage(c *fiber.Ctx, title, active, key, view string) error {
	data := s.base(c, title, active)

	doc, err := content.Load(s.db, key)
	if err != nil {
		return s.fail(c, err, "failed to load content document")
	}

	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return s.fail(c, err, "failed to encode content document")
	}

	data["Document"] = string(pretty)
	data["Key"] = key

	return c.Render(view, data, handler.AdminLayout)
}

// HomepageContent renders the homepage content section editor.
func (s *Service) HomepageContent(c *fiber.Ctx) error {
	return s.documentPage(c, "Homepage Content", "homepage-content",
		content.KeyHomepageContent, "admin/homepage_content")
}

// BiologicalsSection renders the biologicals section editor.
func (s *Service) BiologicalsSection(c *fiber.Ctx) error {
	return s.documentPage(c, "Biologicals Section", "biologicals-section",
		content.KeyBiologicalsSection, "admin/biologicals_section")
}

// Menu renders the navigation editor.
func (s *Service) Menu(c *fiber.Ctx) error {
	data := s.base(c, "Menu", "menu")

	items, err := navigation.List(s.db)
	if err != nil {
		return s.fail(c, err, "failed to list navigation items")
	}

	data["Items"] = items
	data["Defaults"] = navigation.DefaultItems()

	return c.Render("admin/menu", data, handler.AdminLayout)
}

// Settings renders the contact settings editor.
func (s *Service) Settings(c *fiber.Ctx) error {
	data := s.base(c, "Site Settings", "settings")

	settings, err := setting.GetAllAsMap(s.db)
	if err != nil {
		return s.fail(c, err, "failed to load settings")
	}

	data["OfficeAddress"] = settings[content.KeyOfficeAddress]
	data["WarehouseAddress"] = settings[content.KeyWarehouseAddress]
	data["Phone"] = settings[content.KeyPhone]
	data["Email"] = settings[content.KeyEmail]
	data["WhatsApp"] = settings[content.KeyWhatsApp]

	return c.Render("admin/settings", data, handler.AdminLayout)
}

// Logo renders the logo upload page.
func (s *Service) Logo(c *fiber.Ctx) error {
	data := s.base(c, "Logo", "logo")

	logo, err := content.Logo(s.db)
	if err != nil {
		return s.fail(c, err, "failed to load logo setting")
	}

	data["Logo"] = logo

	return c.Render("admin/logo", data, handler.AdminLayout)
}

// Content renders the page content block editor.
func (s *Service) Content(c *fiber.Ctx) error {
	data := s.base(c, "Page Content", "content")

	contents, err := pagecontent.List(s.db)
	if err != nil {
		return s.fail(c, err, "failed to list page contents")
	}

	data["Contents"] = contents
	data["Types"] = []string{models.ContentTypeText, models.ContentTypeHTML, models.ContentTypeMarkdown}

	return c.Render("admin/content", data, handler.AdminLayout)
}
