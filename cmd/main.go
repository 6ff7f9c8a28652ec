package main

import (
	"time"

	"site-service/internal/handler"
	"site-service/internal/middleware"
	"site-service/internal/repository"
	"site-service/internal/service"
	"site-service/pkg/config"
	"site-service/pkg/database"
	"site-service/pkg/jwtutil"
	"site-service/pkg/logger"
	"site-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting site service...", cfg.LogConfig()...)

	// Initialize JWT utilities
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utilities initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Initialize database and run migrations
	if err := database.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed",
		zap.String("db_host", cfg.DB.Host), zap.String("db_name", cfg.DB.DBName))

	// Wire repository, service and handlers
	siteRepo := repository.NewSiteRepository(database.GetDB())
	siteService := service.NewSiteService(siteRepo)
	siteHandler := handler.NewSiteHandler(siteService)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(prometheus.Middleware())

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			log := logger.FromContext(c)
			log.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Float64("duration_s", time.Since(start).Seconds()),
				zap.String("ip", c.RealIP()),
			)

			return err
		}
	})

	// Public routes
	e.GET("/", handler.HealthCheck)
	e.GET("/health", handler.HealthCheck)

	// Prometheus metrics endpoint
	e.GET("/metrics", prometheus.Handler())

	// API routes with owner resolution
	api := e.Group("/api")
	api.Use(middleware.ResolveOwner)

	sites := api.Group("/sites")
	sites.POST("", siteHandler.CreateSite)
	sites.GET("", siteHandler.ListSitesByOwner)
	sites.GET("/count", siteHandler.CountSitesByOwner)
	sites.GET("/suggest-slug", siteHandler.SuggestSlug)
	sites.GET("/check-slug", siteHandler.CheckSlug)
	sites.GET("/languages", handler.ListLanguages)
	sites.GET("/currencies", handler.ListCurrencies)
	sites.GET("/slug/:slug", siteHandler.GetSiteBySlug)
	sites.GET("/:id", siteHandler.GetSite)
	sites.GET("/:id/slug", siteHandler.GetSiteSlug)
	sites.PATCH("/:id", siteHandler.UpdateSite)
	sites.PATCH("/:id/status", siteHandler.UpdateSiteStatus)
	sites.DELETE("/:id", siteHandler.DeleteSite)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
