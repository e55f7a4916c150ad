package main

// @title Barracuda Partners API
// @version 1.0
// @description Affiliate network marketing backend: contact intake, goal postback relay and the admin back office.

// @contact.name API Support
// @contact.email support@barracuda-partners.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/barracuda-partners/backend/config"
	"github.com/barracuda-partners/backend/pkg/api/handlers"
	"github.com/barracuda-partners/backend/pkg/auth"
	"github.com/barracuda-partners/backend/pkg/cache"
	"github.com/barracuda-partners/backend/pkg/contacts"
	"github.com/barracuda-partners/backend/pkg/conversions"
	"github.com/barracuda-partners/backend/pkg/database"
	"github.com/barracuda-partners/backend/pkg/email"
	"github.com/barracuda-partners/backend/pkg/goals"
	"github.com/barracuda-partners/backend/pkg/jobs"
	"github.com/barracuda-partners/backend/pkg/metrics"
	custommiddleware "github.com/barracuda-partners/backend/pkg/middleware"
	"github.com/barracuda-partners/backend/pkg/settings"
	"github.com/barracuda-partners/backend/pkg/storage"
	"github.com/barracuda-partners/backend/pkg/tracker"
	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/barracuda-partners/backend/docs" // Swagger docs (generated)
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Tracking platform clients
	trackerTimeout := time.Duration(cfg.TrackerTimeoutSec) * time.Second
	trackerClient := tracker.NewClient(cfg.TrackerBaseURL, cfg.TrackerHash, trackerTimeout)
	privateAPI := tracker.NewPrivateAPI(cfg.PrivateAPIBaseURL, cfg.PrivateAPIToken, trackerTimeout)

	// Background offer notifier; failures surface on its error channel
	notifier := tracker.NewNotifier(trackerClient, 64, 1)
	go func() {
		for err := range notifier.Errors() {
			log.Printf("⚠️ Offer notification failed: %v", err)
			if cfg.SentryDSN != "" {
				sentry.CaptureException(err)
			}
		}
	}()

	// Initialize services
	contactsService := contacts.NewService(db.Ent)
	conversionsService := conversions.NewService(db.Ent)
	goalsService := goals.NewService(db.Ent, trackerClient, conversionsService, cfg)
	authService := auth.NewService(db.Ent, cfg)
	settingsService := settings.NewService(db.Ent)
	emailService := email.NewService(cfg.EmailFrom, cfg.EmailFromName, cfg.AdminNotifyEmail, cfg.SendGridAPIKey)

	// Export archival storage (local always, S3 when a bucket is configured)
	storageService, err := storage.NewService(storage.Config{
		AWSAccessKeyID:     cfg.AWSAccessKeyID,
		AWSSecretAccessKey: cfg.AWSSecretAccessKey,
		AWSRegion:          cfg.AWSRegion,
		S3Bucket:           cfg.ExportS3Bucket,
		LocalPath:          cfg.StorageLocalPath,
	})
	if err != nil {
		log.Printf("⚠️  Failed to initialize export storage: %v", err)
		storageService = nil
	}

	// Seed the default admin on boot so first login works without a shell
	if _, err := authService.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Printf("⚠️  Failed to seed default admin: %v", err)
	}

	// Nightly stats-cache warmup
	cronManager := jobs.NewCronManager(contactsService, conversionsService, redisClient, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Rate limiters: a global ceiling plus tighter ones for the public
	// form endpoints and admin login
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	formRateLimiter := custommiddleware.NewRateLimiter(10, 5)
	loginRateLimiter := custommiddleware.NewRateLimiter(5, 2)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Info and health endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "Barracuda Partners API",
			"version":     "1.0.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Initialize handlers
	contactHandler := handlers.NewContactHandler(contactsService, goalsService, conversionsService, trackerClient, notifier, emailService, prometheusMetrics, cfg)
	goalHandler := handlers.NewGoalHandler(goalsService, prometheusMetrics, cfg)
	privateHandler := handlers.NewPrivateHandler(privateAPI, conversionsService, cfg)
	adminAuthHandler := handlers.NewAdminAuthHandler(authService, prometheusMetrics)
	adminContactHandler := handlers.NewAdminContactHandler(contactsService, storageService, redisClient, prometheusMetrics)
	adminConversionHandler := handlers.NewAdminConversionHandler(conversionsService, redisClient, prometheusMetrics)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	api := e.Group("/api")
	api.Use(custommiddleware.APIVersionMiddleware(custommiddleware.CurrentAPIVersion))

	// Site-facing routes (public, tighter rate limit on the forms)
	api.POST("/contact", contactHandler.Submit, formRateLimiter.RateLimitMiddleware())
	api.POST("/register", contactHandler.Register, formRateLimiter.RateLimitMiddleware())
	api.POST("/ftd", contactHandler.FTD, formRateLimiter.RateLimitMiddleware())
	api.GET("/postback", contactHandler.Postback)
	api.POST("/goals/postback", goalHandler.SendPostback)
	api.GET("/goals/postback", goalHandler.Config)
	api.POST("/private/conversions", privateHandler.CreateConversion)
	api.GET("/private/conversions", privateHandler.ListConversions)

	// Admin routes (opaque bearer token, login excepted)
	admin := api.Group("/admin")
	admin.POST("/auth/login", adminAuthHandler.Login, loginRateLimiter.RateLimitMiddleware())

	protected := admin.Group("")
	protected.Use(custommiddleware.AdminAuth(authService))
	{
		protected.GET("/auth/profile", adminAuthHandler.Profile)

		protected.GET("/contacts", adminContactHandler.List)
		protected.POST("/contacts/export", adminContactHandler.Export)
		protected.GET("/contacts/stats", adminContactHandler.Stats)
		protected.GET("/contacts/:id", adminContactHandler.Get)
		protected.PUT("/contacts/:id", adminContactHandler.Update)
		protected.DELETE("/contacts/:id", adminContactHandler.Delete)

		protected.GET("/conversions", adminConversionHandler.List)
		protected.POST("/conversions", adminConversionHandler.Create)
		protected.GET("/conversions/stats", adminConversionHandler.Stats)

		protected.GET("/settings", settingsHandler.List)
		protected.PUT("/settings", settingsHandler.Put)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Barracuda Partners API starting on %s", address)
	log.Printf("🎯 Tracker: %s (goals %s/%s)", cfg.TrackerBaseURL, cfg.GoalRegistration, cfg.GoalDeposit)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d), forms 10/min, login 5/min", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron jobs: nightly 2AM stats-cache warmup")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	// Drain queued offer notifications before the listener goes away
	notifier.Close()
	log.Println("✅ Offer notifier drained")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
