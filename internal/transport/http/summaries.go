package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/echo-journal/echod/internal/domain"
)

// SummaryCreateRequest is the request to store a hand-written summary.
type SummaryCreateRequest struct {
	Content string `json:"content"`
	Notes   string `json:"notes,omitempty"`
}

// GetDailySummary returns the summary for one calendar day, deriving and
// caching it from that day's entries on first request.
// GET /v1/users/:user_id/summaries/:date
func (h *Handler) GetDailySummary(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := h.svc.GetOrCreateDailySummary(ctx, c.Param("user_id"), c.Param("date"))
	if err != nil {
		return fail(c, err, "summary")
	}
	return c.JSON(http.StatusOK, summary)
}

// CreateSummary stores a caller-supplied summary for one day. A day that
// already has a summary is a conflict.
// POST /v1/users/:user_id/summaries/:date
func (h *Handler) CreateSummary(c echo.Context) error {
	ctx := c.Request().Context()

	var req SummaryCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	summary := &domain.Summary{
		UserID:  c.Param("user_id"),
		Date:    c.Param("date"),
		Content: req.Content,
		Notes:   req.Notes,
	}
	created, err := h.svc.CreateSummary(ctx, summary)
	if err != nil {
		return fail(c, err, "summary")
	}
	return c.JSON(http.StatusCreated, created)
}

// GetSummaryAudio returns the spoken daily summary as MP3, synthesizing
// it on first request.
// GET /v1/users/:user_id/summaries/:date/audio
func (h *Handler) GetSummaryAudio(c echo.Context) error {
	ctx := c.Request().Context()

	path, err := h.svc.RenderSummaryAudio(ctx, c.Param("user_id"), c.Param("date"))
	if err != nil {
		return fail(c, err, "summary audio")
	}
	return c.File(path)
}
