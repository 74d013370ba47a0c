package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yuviart/storefront/internal/backend"
	"github.com/yuviart/storefront/internal/events"
	"github.com/yuviart/storefront/internal/logging"
	"github.com/yuviart/storefront/internal/models"
	"github.com/yuviart/storefront/internal/store"
	"github.com/yuviart/storefront/internal/validate"
)

type TestimonialHandler struct {
	Store    *store.TestimonialStore
	Client   *backend.Client
	Producer *events.Producer
}

func (h *TestimonialHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"testimonials": h.Store.Approved(),
		"fallback":     h.Store.Fallback(),
	})
}

func (h *TestimonialHandler) Submit(c echo.Context) error {
	var form validate.TestimonialForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if errs := validate.Testimonial(form); !errs.OK() {
		return validationError(c, errs)
	}

	testimonial := models.Testimonial{
		Name:   form.Name,
		Email:  form.Email,
		Rating: form.Rating,
		Text:   form.Text,
	}
	created, err := h.Client.CreateTestimonial(c.Request().Context(), testimonial)
	if err != nil {
		return backendError(err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	event := map[string]any{
		"type":          "testimonial_submitted",
		"testimonialID": created.ID,
		"name":          created.Name,
	}
	if err := h.Producer.PublishEvent(ctx, events.TopicTestimonials, fmt.Sprint(created.ID), event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("testimonial event publish failed", "error", err)
	}

	// Submissions await moderation, so the approved list is unchanged and no
	// refresh is needed here.
	return c.JSON(http.StatusCreated, echo.Map{
		"testimonial": created,
		"message":     "Thank you! Your testimonial will appear after review.",
	})
}

// AdminList shows every testimonial, pending included. Unlike the public
// list this never falls back to mock data: moderating placeholders would be
// worse than an error.
func (h *TestimonialHandler) AdminList(c echo.Context) error {
	if err := h.Store.RefreshAll(c.Request().Context()); err != nil {
		return backendError(err)
	}
	return c.JSON(http.StatusOK, h.Store.All())
}

func (h *TestimonialHandler) Pending(c echo.Context) error {
	if err := h.Store.RefreshAll(c.Request().Context()); err != nil {
		return backendError(err)
	}
	return c.JSON(http.StatusOK, h.Store.Pending())
}

func (h *TestimonialHandler) Approve(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid testimonial id")
	}

	approved, err := h.Client.ApproveTestimonial(c.Request().Context(), uint(id))
	if err != nil {
		return backendError(err)
	}

	if err := h.Store.Refresh(c.Request().Context()); err != nil {
		logging.FromContext(c.Request().Context()).Warn("testimonial refresh failed", "error", err)
	}
	return c.JSON(http.StatusOK, approved)
}

func (h *TestimonialHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid testimonial id")
	}

	if err := h.Client.DeleteTestimonial(c.Request().Context(), uint(id)); err != nil {
		return backendError(err)
	}

	if err := h.Store.Refresh(c.Request().Context()); err != nil {
		logging.FromContext(c.Request().Context()).Warn("testimonial refresh failed", "error", err)
	}
	return c.NoContent(http.StatusNoContent)
}
