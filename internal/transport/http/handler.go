// Package api provides HTTP handlers for the journaling service.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/echo-journal/echod/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	svc *service.Service
}

// NewHandler creates a new handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Internal API (for the chat gateway)
	e.POST("/internal/messages", h.HandleMessage)

	// Public API
	e.POST("/v1/users", h.CreateUser)
	e.GET("/v1/users", h.ListUsers)
	e.GET("/v1/users/:user_id", h.GetUser)

	e.POST("/v1/entries", h.CreateEntry)
	e.GET("/v1/entries/:entry_id", h.GetEntry)
	e.GET("/v1/users/:user_id/entries", h.ListUserEntries)

	e.GET("/v1/users/:user_id/summaries/:date", h.GetDailySummary)
	e.POST("/v1/users/:user_id/summaries/:date", h.CreateSummary)
	e.GET("/v1/users/:user_id/summaries/:date/audio", h.GetSummaryAudio)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
