package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"yt-brief/errors"
	"yt-brief/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideoService struct {
	resp *models.SummarizeResponse
	err  error
	url  string
}

func (f *fakeVideoService) Summarize(_ context.Context, url string) (*models.SummarizeResponse, error) {
	f.url = url
	return f.resp, f.err
}

func newTestApp(service *fakeVideoService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})

	videoHandler := NewVideoHandler(service)
	reportHandler := NewReportHandler()

	app.Post("/api/summarize", videoHandler.Summarize)
	app.Post("/api/report/pdf", reportHandler.PDF)
	app.Post("/api/report/docx", reportHandler.DOCX)
	app.Get("/health", HealthCheck)

	return app
}

func completeSummary() *models.Summary {
	return &models.Summary{
		Introduction: "intro",
		MainPoints:   "points",
		KeyTakeaways: "takeaways",
		Markdown:     "### Video Summary Report\n\nintro",
		Model:        "gemini-2.0-flash",
	}
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(&fakeVideoService{})

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "ok", payload.Status)

	_, err = time.Parse(time.RFC3339, payload.Timestamp)
	assert.NoError(t, err)
}

func TestSummarizeHandler(t *testing.T) {
	service := &fakeVideoService{
		resp: &models.SummarizeResponse{
			Video:            &models.Video{ID: "dQw4w9WgXcQ", Title: "Test"},
			Summary:          completeSummary(),
			TranscriptSource: models.SourceCaptions,
		},
	}
	app := newTestApp(service)

	body, _ := json.Marshal(models.SummarizeRequest{URL: "https://youtu.be/dQw4w9WgXcQ"})
	req := httptest.NewRequest("POST", "/api/summarize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", service.url)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Success bool                      `json:"success"`
		Data    models.SummarizeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(respBody, &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, "Test", payload.Data.Video.Title)
	assert.Equal(t, "intro", payload.Data.Summary.Introduction)
}

func TestSummarizeHandlerMissingURL(t *testing.T) {
	app := newTestApp(&fakeVideoService{})

	req := httptest.NewRequest("POST", "/api/summarize", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSummarizeHandlerPipelineError(t *testing.T) {
	service := &fakeVideoService{
		err: errors.Unavailable("op", nil, "Could not obtain a transcript for this video"),
	}
	app := newTestApp(service)

	body, _ := json.Marshal(models.SummarizeRequest{URL: "https://youtu.be/dQw4w9WgXcQ"})
	req := httptest.NewRequest("POST", "/api/summarize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(respBody, &payload))
	assert.False(t, payload.Success)
	assert.Contains(t, payload.Error, "transcript")
}

func TestReportPDFHandler(t *testing.T) {
	app := newTestApp(&fakeVideoService{})

	body, _ := json.Marshal(models.ReportRequest{Title: "Test Video", Summary: completeSummary()})
	req := httptest.NewRequest("POST", "/api/report/pdf", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Test_Video_summary.pdf")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestReportPDFHandlerIncompleteSummary(t *testing.T) {
	app := newTestApp(&fakeVideoService{})

	body, _ := json.Marshal(models.ReportRequest{Title: "T", Summary: &models.Summary{Introduction: "only intro"}})
	req := httptest.NewRequest("POST", "/api/report/pdf", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestReportDOCXHandler(t *testing.T) {
	app := newTestApp(&fakeVideoService{})

	body, _ := json.Marshal(models.ReportRequest{Title: "Test Video", Summary: completeSummary()})
	req := httptest.NewRequest("POST", "/api/report/docx", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Test_Video_summary.docx")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}
