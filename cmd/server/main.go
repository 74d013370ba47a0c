package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/yuviart/storefront/internal/analytics"
	"github.com/yuviart/storefront/internal/backend"
	"github.com/yuviart/storefront/internal/cart"
	"github.com/yuviart/storefront/internal/config"
	"github.com/yuviart/storefront/internal/events"
	"github.com/yuviart/storefront/internal/httpserver"
	"github.com/yuviart/storefront/internal/logging"
	"github.com/yuviart/storefront/internal/search"
	"github.com/yuviart/storefront/internal/session"
	"github.com/yuviart/storefront/internal/store"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("session db: %v", err)
	}
	sessions := session.NewStore(db)

	client := backend.NewClient(configuration.BACKEND_URL)

	artworks := store.NewArtworkStore(client, configuration.MOCK_MODE)
	testimonials := store.NewTestimonialStore(client, configuration.MOCK_MODE)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	startupCtx = logging.IntoContext(startupCtx, logger)
	if err := artworks.Refresh(startupCtx); err != nil {
		logger.Warn("initial artwork load failed", "error", err)
	}
	if err := testimonials.Refresh(startupCtx); err != nil {
		logger.Warn("initial testimonial load failed", "error", err)
	}
	cancelStartup()

	producer := events.NewProducer(configuration.KAFKA_ADDRESS)

	esClient, err := search.NewESClient(configuration)
	if err != nil {
		logger.Warn("elasticsearch unavailable, using local search", "error", err)
		esClient = nil
	}
	searcher := search.NewService(esClient, search.Index, artworks)

	indexCtx := logging.IntoContext(context.Background(), logger)
	if err := searcher.IndexArtworks(indexCtx, artworks.All()); err != nil {
		logger.Warn("initial index failed", "error", err)
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			l := logger.With("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
			c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), l)))
			return next(c)
		}
	})

	deps := httpserver.Deps{
		ArtworkHandler: &httpserver.ArtworkHandler{
			Store:    artworks,
			Client:   client,
			Searcher: searcher,
			Producer: producer,
		},
		TestimonialHandler: &httpserver.TestimonialHandler{
			Store:    testimonials,
			Client:   client,
			Producer: producer,
		},
		DashboardHandler: &httpserver.DashboardHandler{
			Engine:       analytics.New(),
			Artworks:     artworks,
			Testimonials: testimonials,
		},
		CartHandler: &httpserver.CartHandler{
			Manager:  cart.NewManager(),
			Store:    artworks,
			Client:   client,
			Producer: producer,
			MockMode: configuration.MOCK_MODE,
		},
		OrderHandler: &httpserver.OrderHandler{Client: client},
		AuthHandler: &httpserver.AuthHandler{
			Client:            client,
			Sessions:          sessions,
			JWTSecret:         []byte(configuration.JWT_SECRET),
			AdminEmail:        configuration.ADMIN_EMAIL,
			AdminPasswordHash: configuration.ADMIN_PASSWORD_HASH,
			MockMode:          configuration.MOCK_MODE,
		},
		ContactHandler: &httpserver.ContactHandler{
			Client:   client,
			MockMode: configuration.MOCK_MODE,
		},
		AdminGuard: &httpserver.AdminGuard{Sessions: sessions},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "mock_mode", configuration.MOCK_MODE)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
