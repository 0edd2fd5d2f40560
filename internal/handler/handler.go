package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "oficinas/internal/errors"
)

// fail maps a domain error onto the wire. Store failures collapse to a
// generic 500 and are logged here with their context intact.
func fail(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// badRequest sends a validation failure with the endpoint's canonical
// message, which the client displays verbatim.
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
		Erro: message,
		Code: "VALIDATION_ERROR",
	})
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate accepts the datetime formats the browser forms send.
func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
