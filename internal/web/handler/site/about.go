package site

import (
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/garantico/feedsite/internal/db/controller/pagecontent"
	"github.com/garantico/feedsite/internal/web/handler"
)

// blockView is one rendered content block.
type blockView struct {
	Section string
	HTML    template.HTML
}

// About renders the about page from its editable content blocks.
func (s *Service) About(c *fiber.Ctx) error {
	locale, ok := s.locale(c)
	if !ok {
		return nil
	}

	data, err := s.baseData(c, locale, "about")
	if err != nil {
		return s.fail(c, err, "failed to build about base data")
	}

	blocks, err := pagecontent.ListForPage(s.db, "about")
	if err != nil {
		return s.fail(c, err, "failed to load about page content")
	}

	views := make([]blockView, 0, len(blocks))
	for i := range blocks {
		views = append(views, blockView{
			Section: blocks[i].Section,
			HTML:    renderBlock(&blocks[i], locale),
		})
	}

	data["Blocks"] = views

	return c.Render("about", data, handler.BaseLayout)
}
