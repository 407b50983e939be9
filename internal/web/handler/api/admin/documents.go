package admin

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/garantico/feedsite/internal/content"
	"github.com/garantico/feedsite/internal/media"
	"github.com/garantico/feedsite/internal/web/handler"
)

// documentRequest carries a whole content document. Saving replaces the
// stored document in full.
type documentRequest struct {
	Data map[string]any `json:"data"`
}

func (s *Service) getDocument(c *fiber.Ctx, key string) error {
	doc, err := content.Load(s.db, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to load content document")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONData(c, doc)
}

func (s *Service) saveDocument(c *fiber.Ctx, key string) error {
	req := new(documentRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(req.Data) == 0 {
		return handler.JSONError(c, fiber.StatusBadRequest, "Data is required")
	}

	if err := content.Save(s.db, key, req.Data); err != nil {
		if errors.Is(err, content.ErrEmptyDocument) || errors.Is(err, content.ErrUnknownDocument) {
			return handler.JSONError(c, fiber.StatusBadRequest, "Data is required")
		}

		log.Error().Err(err).Str("key", key).Msg("failed to save content document")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	log.Info().Str("key", key).Msg("content document saved")

	return handler.JSONMessage(c, "Content updated")
}

// GetHomepageContent returns the homepage content document for the editor.
func (s *Service) GetHomepageContent(c *fiber.Ctx) error {
	return s.getDocument(c, content.KeyHomepageContent)
}

// SaveHomepageContent replaces the homepage content document.
func (s *Service) SaveHomepageContent(c *fiber.Ctx) error {
	return s.saveDocument(c, content.KeyHomepageContent)
}

// GetBiologicalsSection returns the biologicals section document for the editor.
func (s *Service) GetBiologicalsSection(c *fiber.Ctx) error {
	return s.getDocument(c, content.KeyBiologicalsSection)
}

// SaveBiologicalsSection replaces the biologicals section document.
func (s *Service) SaveBiologicalsSection(c *fiber.Ctx) error {
	return s.saveDocument(c, content.KeyBiologicalsSection)
}

// UploadBiologicalsImage stores an uploaded image and patches its URL into
// the stored biologicals document.
func (s *Service) UploadBiologicalsImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "No file provided")
	}

	filename, err := media.ImageFilename(fileHeader.Filename)
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid file type")
	}

	if err := c.SaveFile(fileHeader, filepath.Join(s.cfg.Site.UploadDir, filename)); err != nil {
		log.Error().Err(err).Msg("failed to save uploaded biologicals image")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	imageURL := media.URLPath(filename)
	if err := content.SetField(s.db, content.KeyBiologicalsSection, "imageUrl", imageURL); err != nil {
		log.Error().Err(err).Msg("failed to patch biologicals image URL")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONData(c, fiber.Map{"imageUrl": imageURL})
}
