package models

import (
	"encoding/json"
	"fmt"
)

// CategoryList holds the artwork category field. The collaborator is not
// consistent here: most records carry a single string, a few carry an array
// of category names. Both forms decode into the same slice and Primary()
// gives the single normalized category the rest of the code works with.
type CategoryList []string

func (c *CategoryList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*c = CategoryList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("category must be a string or an array of strings")
	}
	*c = CategoryList(many)
	return nil
}

func (c CategoryList) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

// Primary returns the first category, or "custom" when none is set.
func (c CategoryList) Primary() string {
	if len(c) == 0 || c[0] == "" {
		return "custom"
	}
	return c[0]
}

func (c CategoryList) Has(category string) bool {
	for _, cat := range c {
		if cat == category {
			return true
		}
	}
	return false
}

type Artwork struct {
	ID            uint         `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Category      CategoryList `json:"category"`
	Price         float64      `json:"price"`
	Rating        int          `json:"rating"`
	StockQuantity int          `json:"stockQuantity"`
	ImageURL      string       `json:"imageUrl"`
	Available     bool         `json:"available"`
}

type Testimonial struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Approved bool   `json:"approved"`
}

type ArtworkRef struct {
	ID uint `json:"id"`
}

type OrderItem struct {
	Artwork  ArtworkRef `json:"artwork"`
	Quantity int        `json:"quantity"`
	Price    float64    `json:"price"`
}

type Order struct {
	ID              uint        `json:"id,omitempty"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	ShippingAddress string      `json:"shippingAddress"`
	Items           []OrderItem `json:"items"`
	PaymentMethod   string      `json:"paymentMethod"`
	Status          string      `json:"status,omitempty"`
}

type ContactRequest struct {
	ID      uint   `json:"id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	ArtType string `json:"artType"`
	Message string `json:"message"`
}

type Admin struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DayActivity is one weekday bucket of the dashboard chart.
type DayActivity struct {
	Day    string `json:"day"`
	Views  int    `json:"views"`
	Orders int    `json:"orders"`
}

// CategoryViews is one row of the category performance breakdown,
// percentage of total views attributed to the category.
type CategoryViews struct {
	Category   string `json:"category"`
	Views      int    `json:"views"`
	Percentage int    `json:"percentage"`
}

// DashboardStats is recomputed from the artwork and testimonial collections
// on every request. It is display-only and never stored.
type DashboardStats struct {
	TotalArtworks     int             `json:"totalArtworks"`
	TotalRevenue      float64         `json:"totalRevenue"`
	TotalTestimonials int             `json:"totalTestimonials"`
	AvgRating         float64         `json:"avgRating"`
	TotalViews        int             `json:"totalViews"`
	TodayViews        int             `json:"todayViews"`
	WeeklyViews       int             `json:"weeklyViews"`
	MonthlyViews      int             `json:"monthlyViews"`
	TotalOrders       int             `json:"totalOrders"`
	PendingOrders     int             `json:"pendingOrders"`
	CompletedOrders   int             `json:"completedOrders"`
	ActiveUsers       int             `json:"activeUsers"`
	ChartData         []DayActivity   `json:"chartData"`
	CategoryViews     []CategoryViews `json:"categoryViews"`
}
