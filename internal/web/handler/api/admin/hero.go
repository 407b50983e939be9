package admin

import (
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/garantico/feedsite/internal/content"
	"github.com/garantico/feedsite/internal/db/controller/setting"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/media"
	"github.com/garantico/feedsite/internal/web/handler"
)

// heroRequest is the hero banner settings body.
type heroRequest struct {
	ImageURL       string `json:"imageUrl" validate:"max=500"`
	OverlayOpacity int    `json:"overlayOpacity" validate:"min=0,max=100"`
}

// GetHero returns the resolved hero banner settings.
func (s *Service) GetHero(c *fiber.Ctx) error {
	hero, err := content.HeroSettings(s.db, s.cfg.Site.DefaultHeroImage)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve hero settings")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONData(c, hero)
}

// SaveHero stores the hero image URL and overlay opacity.
func (s *Service) SaveHero(c *fiber.Ctx) error {
	req := new(heroRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validator.Struct(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	if req.ImageURL != "" {
		if _, err := setting.Set(s.db, content.KeyHeroImage, req.ImageURL, models.SettingTypeImage); err != nil {
			log.Error().Err(err).Msg("failed to save hero image setting")
			return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	opacity := strconv.Itoa(req.OverlayOpacity)
	if _, err := setting.Set(s.db, content.KeyHeroOverlayOpacity, opacity, models.SettingTypeText); err != nil {
		log.Error().Err(err).Msg("failed to save hero overlay setting")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONMessage(c, "Hero settings saved")
}

// UploadHeroImage stores an uploaded hero image and records its URL.
func (s *Service) UploadHeroImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "No file provided")
	}

	filename, err := media.ImageFilename(fileHeader.Filename)
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid file type")
	}

	if err := c.SaveFile(fileHeader, filepath.Join(s.cfg.Site.UploadDir, filename)); err != nil {
		log.Error().Err(err).Msg("failed to save uploaded hero image")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	imageURL := media.URLPath(filename)
	if _, err := setting.Set(s.db, content.KeyHeroImage, imageURL, models.SettingTypeImage); err != nil {
		log.Error().Err(err).Msg("failed to save hero image setting")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONData(c, fiber.Map{"imageUrl": imageURL})
}
