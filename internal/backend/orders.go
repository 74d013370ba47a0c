package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yuviart/storefront/internal/models"
)

func (c *Client) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	var created models.Order
	if err := c.sendJSON(ctx, http.MethodPost, "/orders", order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) Order(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := c.getJSON(ctx, fmt.Sprintf("/orders/%d", id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) OrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, "/orders/customer/"+url.PathEscape(email), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	var updated models.Order
	path := fmt.Sprintf("/orders/%d/status?status=%s", id, url.QueryEscape(status))
	if err := c.sendJSON(ctx, http.MethodPut, path, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) SubmitContact(ctx context.Context, request models.ContactRequest) (*models.ContactRequest, error) {
	var saved models.ContactRequest
	if err := c.sendJSON(ctx, http.MethodPost, "/contact", request, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
