package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/echo-journal/echod/internal/domain"
)

// fail maps a service error to an HTTP response. Validation problems and
// the not-found/conflict sentinels keep their detail; anything else is a
// logged 500 with a generic message. noun names the resource in play.
func fail(c echo.Context, err error, noun string) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": verr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": noun + " not found"})
	case errors.Is(err, domain.ErrConflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": noun + " already exists"})
	default:
		log.Printf("ERROR: %s request failed: %v", noun, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
