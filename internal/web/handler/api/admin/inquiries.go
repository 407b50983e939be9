package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/garantico/feedsite/internal/db/controller/inquiry"
	"github.com/garantico/feedsite/internal/web/handler"
)

// inquiryStatusRequest is the status transition body.
type inquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending contacted completed"`
}

// ListInquiries returns inquiries newest first, optionally filtered by the
// status query parameter.
func (s *Service) ListInquiries(c *fiber.Ctx) error {
	inquiries, err := inquiry.List(s.db, c.Query("status"))
	if err != nil {
		if errors.Is(err, inquiry.ErrInvalidStatus) {
			return handler.JSONError(c, fiber.StatusBadRequest, "Invalid status filter")
		}

		log.Error().Err(err).Msg("failed to list inquiries")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONData(c, inquiries)
}

// UpdateInquiryStatus moves an inquiry through the workflow.
func (s *Service) UpdateInquiryStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid inquiry id")
	}

	req := new(inquiryStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validator.Struct(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	if err := inquiry.UpdateStatus(s.db, uint64(id), req.Status); err != nil {
		switch {
		case errors.Is(err, inquiry.ErrInquiryNotFound):
			return handler.JSONError(c, fiber.StatusNotFound, "Inquiry not found")
		case errors.Is(err, inquiry.ErrInvalidStatus):
			return handler.JSONError(c, fiber.StatusBadRequest, "Invalid status")
		default:
			log.Error().Err(err).Msg("failed to update inquiry status")
			return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	return handler.JSONMessage(c, "Status updated")
}
