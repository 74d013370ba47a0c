package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yuviart/storefront/internal/backend"
	"github.com/yuviart/storefront/internal/validate"
)

// OrderHandler is a passthrough to the collaborator's order routes: customers
// look up their order history, admins move orders through statuses. Orders
// are never cached here, every call hits the backend.
type OrderHandler struct {
	Client *backend.Client
}

func (h *OrderHandler) ByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if errs := validate.Email(email); !errs.OK() {
		return validationError(c, errs)
	}

	orders, err := h.Client.OrdersByEmail(c.Request().Context(), email)
	if err != nil {
		return backendError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.Client.Order(c.Request().Context(), uint(id))
	if err != nil {
		return backendError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	status := c.QueryParam("status")
	if status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing status")
	}

	updated, err := h.Client.UpdateOrderStatus(c.Request().Context(), uint(id), status)
	if err != nil {
		return backendError(err)
	}
	return c.JSON(http.StatusOK, updated)
}
