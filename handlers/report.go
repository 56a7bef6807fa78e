package handlers

import (
	"yt-brief/errors"
	"yt-brief/models"
	"yt-brief/report"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

// PDF renders a summary the client already holds as a downloadable PDF.
// Stateless: no model call, nothing read from or written to the server.
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	req, err := parseReportRequest(c)
	if err != nil {
		return err
	}

	data, err := report.PDF(req.Title, req.Summary)
	if err != nil {
		return errors.Internal("ReportHandler.PDF", err, "Failed to render PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+report.Filename(req.Title, "pdf")+`"`)
	return c.Send(data)
}

// DOCX renders a summary as a downloadable Word document.
func (h *ReportHandler) DOCX(c *fiber.Ctx) error {
	req, err := parseReportRequest(c)
	if err != nil {
		return err
	}

	data, err := report.DOCX(req.Title, req.Summary)
	if err != nil {
		return errors.Internal("ReportHandler.DOCX", err, "Failed to render document")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+report.Filename(req.Title, "docx")+`"`)
	return c.Send(data)
}

func parseReportRequest(c *fiber.Ctx) (*models.ReportRequest, error) {
	const op = "handlers.parseReportRequest"

	var req models.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.InvalidInput(op, err, "Invalid report request body")
	}
	if req.Summary == nil || !req.Summary.IsComplete() {
		return nil, errors.InvalidInput(op, nil, "A complete summary is required")
	}
	if req.Title == "" {
		req.Title = "Video Summary Report"
	}

	return &req, nil
}
