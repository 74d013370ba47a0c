// Package cart implements the per-session shopping cart. A cart is an
// ordered list of artwork snapshots: adding the same artwork twice yields
// two entries, removing by id drops every entry with that id. Carts live in
// memory only and die with the session.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/yuviart/storefront/internal/models"
)

var ErrEmpty = errors.New("cart is empty")

type Cart struct {
	mu    sync.Mutex
	items []models.Artwork
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) Add(artwork models.Artwork) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, artwork)
}

// Remove drops every entry whose artwork id matches and reports how many
// were dropped.
func (c *Cart) Remove(id uint) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	removed := 0
	for _, item := range c.items {
		if item.ID == id {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	return removed
}

func (c *Cart) Items() []models.Artwork {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Artwork, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total()
}

func (c *Cart) total() float64 {
	sum := 0.0
	for _, item := range c.items {
		sum += item.Price
	}
	return sum
}

// OrderPlacer is the slice of the backend client checkout needs.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, order models.Order) (*models.Order, error)
}

type Customer struct {
	Name          string `json:"customerName"`
	Email         string `json:"customerEmail"`
	Phone         string `json:"customerPhone"`
	Address       string `json:"shippingAddress"`
	PaymentMethod string `json:"paymentMethod"`
}

type CheckoutResult struct {
	OrderID   uint    `json:"orderId,omitempty"`
	LocalRef  string  `json:"localRef,omitempty"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
	Mock      bool    `json:"mock"`
}

// Checkout is terminal: the cart empties only after the order call succeeds
// or the mock path completes. A failed order call leaves the cart exactly as
// it was so the user can retry.
func (c *Cart) Checkout(ctx context.Context, placer OrderPlacer, customer Customer, mockMode bool) (*CheckoutResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return nil, ErrEmpty
	}

	result := &CheckoutResult{
		Total:     c.total(),
		ItemCount: len(c.items),
	}

	if mockMode {
		result.LocalRef = uuid.NewString()
		result.Mock = true
		c.items = nil
		return result, nil
	}

	paymentMethod := customer.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "razorpay"
	}

	order := models.Order{
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		ShippingAddress: customer.Address,
		PaymentMethod:   paymentMethod,
	}
	for _, item := range c.items {
		order.Items = append(order.Items, models.OrderItem{
			Artwork:  models.ArtworkRef{ID: item.ID},
			Quantity: 1,
			Price:    item.Price,
		})
	}

	created, err := placer.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	result.OrderID = created.ID
	c.items = nil
	return result, nil
}
