package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yuviart/storefront/internal/models"
)

// Testimonials returns only the approved ones; that is what the public
// route serves.
func (c *Client) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := c.getJSON(ctx, "/testimonials", &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (c *Client) AllTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := c.getJSON(ctx, "/testimonials/all", &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// CreateTestimonial submits a new testimonial; the backend stores it
// unapproved until an admin approves it.
func (c *Client) CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (*models.Testimonial, error) {
	var created models.Testimonial
	if err := c.sendJSON(ctx, http.MethodPost, "/testimonials", testimonial, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ApproveTestimonial(ctx context.Context, id uint) (*models.Testimonial, error) {
	var approved models.Testimonial
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/testimonials/%d/approve", id), nil, &approved); err != nil {
		return nil, err
	}
	return &approved, nil
}

func (c *Client) DeleteTestimonial(ctx context.Context, id uint) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/testimonials/%d", id), nil, nil)
}
