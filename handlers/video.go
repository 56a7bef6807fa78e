package handlers

import (
	"yt-brief/errors"
	"yt-brief/models"
	"yt-brief/services/video"

	"github.com/gofiber/fiber/v2"
)

type VideoHandler struct {
	service video.Service
}

func NewVideoHandler(service video.Service) *VideoHandler {
	return &VideoHandler{service: service}
}

// Summarize runs the whole pipeline synchronously and returns the
// structured summary. The request blocks until it completes or fails.
func (h *VideoHandler) Summarize(c *fiber.Ctx) error {
	var req models.SummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		// Plain form posts land here too.
		req.URL = c.FormValue("url")
	}
	if req.URL == "" {
		return &errors.AppError{
			Code:    fiber.StatusBadRequest,
			Message: "URL is required",
		}
	}

	resp, err := h.service.Summarize(c.Context(), req.URL)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    resp,
	})
}
