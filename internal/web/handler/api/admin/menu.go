package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/garantico/feedsite/internal/db/controller/navigation"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/web/handler"
)

// menuItemRequest is the create/update body for a navigation item.
type menuItemRequest struct {
	LabelTr string `json:"labelTr" validate:"required,max=255"`
	LabelEn string `json:"labelEn" validate:"required,max=255"`
	Href    string `json:"href" validate:"required,max=500"`
	Order   int    `json:"order"`
	Menu    string `json:"menu" validate:"omitempty,oneof=top main"`
	Active  bool   `json:"active"`
}

// ListMenu returns every navigation item for the editor.
func (s *Service) ListMenu(c *fiber.Ctx) error {
	items, err := navigation.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list navigation items")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONData(c, items)
}

// CreateMenuItem creates a navigation item.
func (s *Service) CreateMenuItem(c *fiber.Ctx) error {
	req := new(menuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validator.Struct(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	item := &models.NavigationItem{
		LabelTr: req.LabelTr,
		LabelEn: req.LabelEn,
		Href:    req.Href,
		Order:   req.Order,
		Menu:    req.Menu,
		Active:  req.Active,
	}

	if err := navigation.Create(s.db, item); err != nil {
		log.Error().Err(err).Msg("failed to create navigation item")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONCreated(c, item)
}

// UpdateMenuItem updates a navigation item.
func (s *Service) UpdateMenuItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid menu item id")
	}

	req := new(menuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validator.Struct(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	src := &models.NavigationItem{
		LabelTr: req.LabelTr,
		LabelEn: req.LabelEn,
		Href:    req.Href,
		Order:   req.Order,
		Active:  req.Active,
	}

	if err := navigation.Update(s.db, uint64(id), src); err != nil {
		if errors.Is(err, navigation.ErrItemNotFound) {
			return handler.JSONError(c, fiber.StatusNotFound, "Menu item not found")
		}

		log.Error().Err(err).Msg("failed to update navigation item")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONMessage(c, "Menu item updated")
}

// DeleteMenuItem removes a navigation item.
func (s *Service) DeleteMenuItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid menu item id")
	}

	if err := navigation.Delete(s.db, uint64(id)); err != nil {
		if errors.Is(err, navigation.ErrItemNotFound) {
			return handler.JSONError(c, fiber.StatusNotFound, "Menu item not found")
		}

		log.Error().Err(err).Msg("failed to delete navigation item")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONMessage(c, "Menu item deleted")
}
