package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yuviart/storefront/internal/analytics"
	"github.com/yuviart/storefront/internal/logging"
	"github.com/yuviart/storefront/internal/store"
)

type DashboardHandler struct {
	Engine       *analytics.Engine
	Artworks     *store.ArtworkStore
	Testimonials *store.TestimonialStore
}

// Stats recomputes the dashboard from the current collections on every
// request. A failed refresh still answers, from whatever the stores hold.
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard")

	if err := h.Artworks.Refresh(ctx); err != nil {
		l.Warn("artwork refresh failed", "error", err)
	}
	if err := h.Testimonials.Refresh(ctx); err != nil {
		l.Warn("testimonial refresh failed", "error", err)
	}

	stats := h.Engine.Compute(h.Artworks.All(), h.Testimonials.Approved())
	return c.JSON(http.StatusOK, stats)
}
