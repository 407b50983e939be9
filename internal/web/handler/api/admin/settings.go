package admin

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/garantico/feedsite/internal/content"
	"github.com/garantico/feedsite/internal/db/controller/setting"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/media"
	"github.com/garantico/feedsite/internal/web/handler"
)

// settingEntry is one key/value pair of the bulk settings save.
type settingEntry struct {
	Key   string `json:"key" validate:"required,max=255"`
	Value string `json:"value"`
	Type  string `json:"type" validate:"omitempty,oneof=text json image"`
}

// settingsRequest is the bulk settings save body.
type settingsRequest struct {
	Settings []settingEntry `json:"settings" validate:"required,dive"`
}

// GetSettings returns every settings row.
func (s *Service) GetSettings(c *fiber.Ctx) error {
	settings, err := setting.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONData(c, settings)
}

// SaveSettings upserts each submitted key in turn. Keys are saved
// independently, a failure leaves earlier keys written.
func (s *Service) SaveSettings(c *fiber.Ctx) error {
	req := new(settingsRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validator.Struct(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	for _, entry := range req.Settings {
		settingType := entry.Type
		if settingType == "" {
			settingType = models.SettingTypeText
		}

		if _, err := setting.Set(s.db, entry.Key, entry.Value, settingType); err != nil {
			log.Error().Err(err).Str("key", entry.Key).Msg("failed to save setting")
			return handler.JSONError(c, fiber.StatusInternalServerError, "Failed to save setting "+entry.Key)
		}
	}

	log.Info().Int("count", len(req.Settings)).Msg("settings saved")

	return handler.JSONMessage(c, "Settings saved")
}

// UploadLogo stores an uploaded logo and records its URL.
func (s *Service) UploadLogo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "No file provided")
	}

	filename, err := media.ImageFilename(fileHeader.Filename)
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid file type")
	}

	if err := c.SaveFile(fileHeader, filepath.Join(s.cfg.Site.UploadDir, filename)); err != nil {
		log.Error().Err(err).Msg("failed to save uploaded logo")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	logoURL := media.URLPath(filename)
	if _, err := setting.Set(s.db, content.KeyLogo, logoURL, models.SettingTypeImage); err != nil {
		log.Error().Err(err).Msg("failed to save logo setting")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONData(c, fiber.Map{"logoUrl": logoURL})
}
