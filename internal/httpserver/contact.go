package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yuviart/storefront/internal/backend"
	"github.com/yuviart/storefront/internal/models"
	"github.com/yuviart/storefront/internal/validate"
)

type ContactHandler struct {
	Client   *backend.Client
	MockMode bool
}

func (h *ContactHandler) Submit(c echo.Context) error {
	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	errs := validate.Contact(validate.ContactForm{
		Name:    req.Name,
		Email:   req.Email,
		ArtType: req.ArtType,
		Message: req.Message,
	})
	if !errs.OK() {
		return validationError(c, errs)
	}

	if h.MockMode {
		return c.JSON(http.StatusAccepted, echo.Map{
			"message": "Thank you! We will get back to you soon.",
		})
	}

	created, err := h.Client.SubmitContact(c.Request().Context(), req)
	if err != nil {
		return backendError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"request": created,
		"message": "Thank you! We will get back to you soon.",
	})
}
