package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/echo-journal/echod/internal/domain"
)

// UserCreateRequest is the request to register a user.
type UserCreateRequest struct {
	Name          string            `json:"name"`
	DiscordID     string            `json:"discord_id"`
	StartDate     *time.Time        `json:"start_date,omitempty"`
	EndDate       *time.Time        `json:"end_date,omitempty"`
	QuietHours    domain.QuietHours `json:"quiet_hours"`
	Persona       string            `json:"persona,omitempty"`
	SummaryLength string            `json:"summary_length,omitempty"`
	Voice         string            `json:"voice,omitempty"`
}

// CreateUser registers a new user.
// POST /v1/users
func (h *Handler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	user := &domain.User{
		Name:          req.Name,
		DiscordID:     req.DiscordID,
		EndDate:       req.EndDate,
		QuietHours:    req.QuietHours,
		Persona:       req.Persona,
		SummaryLength: req.SummaryLength,
		Voice:         req.Voice,
	}
	if req.StartDate != nil {
		user.StartDate = *req.StartDate
	}

	created, err := h.svc.CreateUser(ctx, user)
	if err != nil {
		return fail(c, err, "user")
	}
	return c.JSON(http.StatusCreated, created)
}

// GetUser gets a user by ID.
// GET /v1/users/:user_id
func (h *Handler) GetUser(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.svc.GetUser(ctx, c.Param("user_id"))
	if err != nil {
		return fail(c, err, "user")
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers lists all registered users.
// GET /v1/users
func (h *Handler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.svc.ListUsers(ctx)
	if err != nil {
		return fail(c, err, "user")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": users,
	})
}
