package backend

import (
	"context"
	"net/http"

	"github.com/yuviart/storefront/internal/models"
)

// AdminLoginResult is the token+profile pair returned on a successful login.
// The token is opaque to this service; it is stored and replayed as-is.
type AdminLoginResult struct {
	Token   string       `json:"token"`
	Admin   models.Admin `json:"admin"`
	Message string       `json:"message,omitempty"`
}

func (c *Client) AdminLogin(ctx context.Context, email, password string) (*AdminLoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result AdminLoginResult
	if err := c.sendJSON(ctx, http.MethodPost, "/admin/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type AdminSignupResult struct {
	Admin   models.Admin `json:"admin"`
	Message string       `json:"message,omitempty"`
}

func (c *Client) AdminSignup(ctx context.Context, name, email, password string) (*AdminSignupResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var result AdminSignupResult
	if err := c.sendJSON(ctx, http.MethodPost, "/admin/signup", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
