package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yuviart/storefront/internal/backend"
	"github.com/yuviart/storefront/internal/validate"
)

// validationError returns the field→message map without touching the
// collaborator. The request that produced it was never sent.
func validationError(c echo.Context, errs validate.Errors) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
}

// backendError translates collaborator failures into responses: unreachable
// maps to 503, a 404 passes through, anything the collaborator rejected
// keeps its status and message.
func backendError(err error) error {
	var rejected *backend.RejectedError
	switch {
	case errors.Is(err, backend.ErrUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "backend unavailable")
	case errors.Is(err, backend.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.As(err, &rejected):
		msg := rejected.Message
		if msg == "" {
			msg = http.StatusText(rejected.Status)
		}
		return echo.NewHTTPError(rejected.Status, msg)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
