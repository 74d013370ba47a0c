package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/yuviart/storefront/internal/backend"
	"github.com/yuviart/storefront/internal/cart"
	"github.com/yuviart/storefront/internal/events"
	"github.com/yuviart/storefront/internal/logging"
	"github.com/yuviart/storefront/internal/store"
)

const cartCookie = "cart_session"

type CartHandler struct {
	Manager  *cart.Manager
	Store    *store.ArtworkStore
	Client   *backend.Client
	Producer *events.Producer
	MockMode bool
}

// sessionCart resolves the caller's cart from the session cookie, minting a
// cookie on first contact. Callers that may leave the cart empty evict it
// through the manager afterwards so anonymous sessions do not pile up.
func (h *CartHandler) sessionCart(c echo.Context) (string, *cart.Cart) {
	cookie, err := c.Cookie(cartCookie)
	if err != nil || cookie.Value == "" {
		cookie = &http.Cookie{
			Name:     cartCookie,
			Value:    uuid.NewString(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
		c.SetCookie(cookie)
	}
	return cookie.Value, h.Manager.Get(cookie.Value)
}

func (h *CartHandler) Get(c echo.Context) error {
	sessionID, userCart := h.sessionCart(c)
	defer h.Manager.DropIfEmpty(sessionID)
	return c.JSON(http.StatusOK, echo.Map{
		"items": userCart.Items(),
		"total": userCart.Total(),
	})
}

func (h *CartHandler) Add(c echo.Context) error {
	var req struct {
		ArtworkID uint `json:"artworkId"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	artwork, ok := h.Store.Get(req.ArtworkID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "artwork not found")
	}

	_, userCart := h.sessionCart(c)
	userCart.Add(artwork)

	return c.JSON(http.StatusOK, echo.Map{
		"items": userCart.Items(),
		"total": userCart.Total(),
	})
}

// Remove drops every cart entry for the artwork, matching how the
// storefront's remove button clears duplicates at once.
func (h *CartHandler) Remove(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artwork id")
	}

	sessionID, userCart := h.sessionCart(c)
	removed := userCart.Remove(uint(id))
	h.Manager.DropIfEmpty(sessionID)

	return c.JSON(http.StatusOK, echo.Map{
		"removed": removed,
		"items":   userCart.Items(),
		"total":   userCart.Total(),
	})
}

func (h *CartHandler) Checkout(c echo.Context) error {
	var customer cart.Customer
	if err := c.Bind(&customer); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sessionID, userCart := h.sessionCart(c)

	result, err := userCart.Checkout(c.Request().Context(), h.Client, customer, h.MockMode)
	if errors.Is(err, cart.ErrEmpty) {
		h.Manager.DropIfEmpty(sessionID)
		return echo.NewHTTPError(http.StatusBadRequest, "cart is empty")
	}
	if err != nil {
		return backendError(err)
	}
	h.Manager.DropIfEmpty(sessionID)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	event := map[string]any{
		"type":      "order_created",
		"orderID":   result.OrderID,
		"localRef":  result.LocalRef,
		"total":     result.Total,
		"itemCount": result.ItemCount,
	}
	key := result.LocalRef
	if result.OrderID != 0 {
		key = fmt.Sprint(result.OrderID)
	}
	if err := h.Producer.PublishEvent(ctx, events.TopicOrders, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("order event publish failed", "error", err)
	}

	return c.JSON(http.StatusOK, result)
}
