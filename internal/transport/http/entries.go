package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/echo-journal/echod/internal/domain"
)

// EntryCreateRequest is the request to record a journal entry directly,
// bypassing the check-in pipeline.
type EntryCreateRequest struct {
	UserID    string     `json:"user_id"`
	Content   string     `json:"content"`
	Role      string     `json:"role,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Source    string     `json:"source,omitempty"`
}

// CreateEntry records a journal entry.
// POST /v1/entries
func (h *Handler) CreateEntry(c echo.Context) error {
	ctx := c.Request().Context()

	var req EntryCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	entry := &domain.Entry{
		UserID:  req.UserID,
		Content: req.Content,
		Role:    domain.Role(req.Role),
		Notes:   req.Notes,
		Source:  req.Source,
	}
	if req.Timestamp != nil {
		entry.Timestamp = *req.Timestamp
	}

	created, err := h.svc.CreateEntry(ctx, entry)
	if err != nil {
		return fail(c, err, "entry")
	}
	return c.JSON(http.StatusCreated, created)
}

// GetEntry gets an entry by ID.
// GET /v1/entries/:entry_id
func (h *Handler) GetEntry(c echo.Context) error {
	ctx := c.Request().Context()

	entry, err := h.svc.GetEntry(ctx, c.Param("entry_id"))
	if err != nil {
		return fail(c, err, "entry")
	}
	return c.JSON(http.StatusOK, entry)
}

// ListUserEntries lists a user's entries, optionally scoped to one day
// via ?date=YYYY-MM-DD or capped via ?limit=N.
// GET /v1/users/:user_id/entries
func (h *Handler) ListUserEntries(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
		}
		limit = n
	}

	entries, err := h.svc.ListUserEntries(ctx, c.Param("user_id"), c.QueryParam("date"), limit)
	if err != nil {
		return fail(c, err, "entry")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"entries": entries,
	})
}
