package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	ArtworkHandler     *ArtworkHandler
	TestimonialHandler *TestimonialHandler
	DashboardHandler   *DashboardHandler
	CartHandler        *CartHandler
	OrderHandler       *OrderHandler
	AuthHandler        *AuthHandler
	ContactHandler     *ContactHandler
	AdminGuard         *AdminGuard
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	artworks := v1.Group("/artworks")
	artworks.GET("", d.ArtworkHandler.List)
	artworks.GET("/:id", d.ArtworkHandler.Get)

	v1.GET("/search", d.ArtworkHandler.Search)

	v1.GET("/testimonials", d.TestimonialHandler.List)
	v1.POST("/testimonials", d.TestimonialHandler.Submit)

	v1.POST("/contact", d.ContactHandler.Submit)

	v1.POST("/signup", d.AuthHandler.Signup)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.Logout)

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.Get)
	cart.POST("", d.CartHandler.Add)
	cart.DELETE("/:id", d.CartHandler.Remove)
	cart.POST("/checkout", d.CartHandler.Checkout)

	v1.GET("/orders", d.OrderHandler.ByEmail)

	v1.POST("/admin/login", d.AuthHandler.AdminLogin)
	v1.POST("/admin/signup", d.AuthHandler.AdminSignup)

	admin := v1.Group("/admin", d.AdminGuard.Middleware)

	admin.GET("/session", d.AuthHandler.AdminSession)
	admin.POST("/logout", d.AuthHandler.AdminLogout)

	admin.GET("/dashboard", d.DashboardHandler.Stats)

	admin.GET("/artworks", d.ArtworkHandler.AdminList)
	admin.POST("/artworks", d.ArtworkHandler.Create)
	admin.POST("/artworks/with-image", d.ArtworkHandler.CreateWithImage)
	admin.PUT("/artworks/:id", d.ArtworkHandler.Update)
	admin.DELETE("/artworks/:id", d.ArtworkHandler.Delete)

	admin.GET("/orders/:id", d.OrderHandler.Get)
	admin.PUT("/orders/:id/status", d.OrderHandler.UpdateStatus)

	admin.GET("/testimonials", d.TestimonialHandler.AdminList)
	admin.GET("/testimonials/pending", d.TestimonialHandler.Pending)
	admin.PUT("/testimonials/:id/approve", d.TestimonialHandler.Approve)
	admin.DELETE("/testimonials/:id", d.TestimonialHandler.Delete)

	admin.POST("/pending-artwork", d.AuthHandler.SavePendingArtwork)
	admin.POST("/pending-artwork/take", d.AuthHandler.TakePendingArtwork)
}
