package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/yuviart/storefront/internal/session"
)

// AdminGuard gates the admin routes on the token issued at admin login. The
// token is opaque; the guard only checks it matches the one in the session
// store.
type AdminGuard struct {
	Sessions *session.Store
}

func (g *AdminGuard) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}

		stored, _, err := g.Sessions.AdminSession(c.Request().Context())
		if err != nil || stored != token {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return next(c)
	}
}
