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

	"nebula_web/config"
	"nebula_web/handlers"
	"nebula_web/middleware"
	"nebula_web/services"
	"nebula_web/services/i18n"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}
	middleware.InitAssetVersions("static")

	// Backend content API
	backend := services.NewBackendClient(cfg.BackendURL, cfg.BackendTimeout)
	services.Backend = backend
	log.Printf("[INFO] Using backend at %s", backend.BaseURL())

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{AllowOrigins: cfg.AllowedOrigins}))
	e.Use(echomiddleware.Secure())
	e.Use(middleware.CSPNonce())
	e.Use(middleware.Locale(cfg))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")

	// Operational routes (no CSRF)
	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(backend, prometheus.DefaultRegisterer))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/robots.txt", handlers.GetRobotsHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)

	// Page routes
	contactLimiter := middleware.NewContactRateLimiter(cfg.ContactRateLimit)
	defer contactLimiter.Stop()
	defer services.ContactGuard.Stop()

	site := e.Group("")
	site.Use(middleware.CSRF(cfg))
	{
		site.GET("/", handlers.LandingHandler)
		site.GET("/sections/:name", handlers.SectionHandler)
		site.POST("/contact", handlers.ContactPostHandler, contactLimiter.Middleware())
	}

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("[WARNING] Graceful shutdown failed: %v", err)
	}
}
