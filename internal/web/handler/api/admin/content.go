package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/garantico/feedsite/internal/db/controller/pagecontent"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/web/handler"
)

// contentBlockRequest is the create body for a page content block.
type contentBlockRequest struct {
	Page      string `json:"page" validate:"required,max=100"`
	Section   string `json:"section" validate:"required,max=100"`
	ContentTr string `json:"contentTr"`
	ContentEn string `json:"contentEn"`
	Type      string `json:"type" validate:"omitempty,oneof=text html markdown"`
	Order     int    `json:"order"`
}

// contentBlockUpdate is the update body, only translations are editable.
type contentBlockUpdate struct {
	ContentTr string `json:"contentTr"`
	ContentEn string `json:"contentEn"`
}

// ListContent returns every page content block.
func (s *Service) ListContent(c *fiber.Ctx) error {
	contents, err := pagecontent.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list page contents")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONData(c, contents)
}

// CreateContent creates a page content block.
func (s *Service) CreateContent(c *fiber.Ctx) error {
	req := new(contentBlockRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validator.Struct(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	block := &models.PageContent{
		Page:      req.Page,
		Section:   req.Section,
		ContentTr: req.ContentTr,
		ContentEn: req.ContentEn,
		Type:      req.Type,
		Order:     req.Order,
		Active:    true,
	}

	if err := pagecontent.Create(s.db, block); err != nil {
		log.Error().Err(err).Msg("failed to create page content")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONCreated(c, block)
}

// UpdateContent updates the translations of a content block.
func (s *Service) UpdateContent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid content id")
	}

	req := new(contentBlockUpdate)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := pagecontent.Update(s.db, uint64(id), req.ContentTr, req.ContentEn); err != nil {
		if errors.Is(err, pagecontent.ErrContentNotFound) {
			return handler.JSONError(c, fiber.StatusNotFound, "Content not found")
		}

		log.Error().Err(err).Msg("failed to update page content")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONMessage(c, "Content updated")
}

// DeleteContent removes a content block.
func (s *Service) DeleteContent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid content id")
	}

	if err := pagecontent.Delete(s.db, uint64(id)); err != nil {
		if errors.Is(err, pagecontent.ErrContentNotFound) {
			return handler.JSONError(c, fiber.StatusNotFound, "Content not found")
		}

		log.Error().Err(err).Msg("failed to delete page content")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONMessage(c, "Content deleted")
}
