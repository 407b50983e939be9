package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/garantico/feedsite/internal/db/controller/category"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/web/handler"
)

// categoryRequest is the create/update body for a category.
type categoryRequest struct {
	Slug     string `json:"slug" validate:"required,max=255"`
	NameTr   string `json:"nameTr" validate:"required,max=255"`
	NameEn   string `json:"nameEn" validate:"required,max=255"`
	Order    int    `json:"order"`
	Featured bool   `json:"featured"`
}

// ListCategories returns all categories in display order.
func (s *Service) ListCategories(c *fiber.Ctx) error {
	categories, err := category.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list categories")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONData(c, categories)
}

// CreateCategory creates a category. A taken slug answers 400.
func (s *Service) CreateCategory(c *fiber.Ctx) error {
	req := new(categoryRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validator.Struct(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	cat := &models.Category{
		Slug:     req.Slug,
		NameTr:   req.NameTr,
		NameEn:   req.NameEn,
		Order:    req.Order,
		Featured: req.Featured,
	}

	if err := category.Create(s.db, cat); err != nil {
		switch {
		case errors.Is(err, category.ErrSlugExists):
			return handler.JSONError(c, fiber.StatusBadRequest, "A category with this slug already exists")
		case errors.Is(err, category.ErrSlugEmpty):
			return handler.JSONError(c, fiber.StatusBadRequest, "Slug is required")
		default:
			log.Error().Err(err).Msg("failed to create category")
			return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	return handler.JSONCreated(c, cat)
}

// UpdateCategory updates a category. The slug is immutable.
func (s *Service) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid category id")
	}

	req := new(categoryRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validator.Struct(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	src := &models.Category{
		NameTr:   req.NameTr,
		NameEn:   req.NameEn,
		Order:    req.Order,
		Featured: req.Featured,
	}

	if err := category.Update(s.db, uint64(id), src); err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return handler.JSONError(c, fiber.StatusNotFound, "Category not found")
		}

		log.Error().Err(err).Msg("failed to update category")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONMessage(c, "Category updated")
}
