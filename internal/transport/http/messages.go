package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/echo-journal/echod/internal/domain"
)

// HandleMessage runs the check-in pipeline for one inbound chat message.
// Command chatter ("!"-prefixed) is acknowledged without touching the
// journal.
// POST /internal/messages
func (h *Handler) HandleMessage(c echo.Context) error {
	ctx := c.Request().Context()

	var msg domain.InboundMessage
	if err := c.Bind(&msg); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	checkIn, err := h.svc.HandleInbound(ctx, &msg)
	if err != nil {
		return fail(c, err, "message")
	}
	if checkIn == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"ignored": true,
		})
	}
	return c.JSON(http.StatusOK, checkIn)
}
