package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yashalsharma/kirayadoor-backend/internal/config"
	"github.com/yashalsharma/kirayadoor-backend/internal/email"
	"github.com/yashalsharma/kirayadoor-backend/internal/handler"
	"github.com/yashalsharma/kirayadoor-backend/internal/middleware"
	"github.com/yashalsharma/kirayadoor-backend/internal/repository/postgres"
	"github.com/yashalsharma/kirayadoor-backend/internal/repository/storage"
	"github.com/yashalsharma/kirayadoor-backend/internal/service"
	"github.com/yashalsharma/kirayadoor-backend/internal/ws"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Verify database connection
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	// Initialize repositories
	ownerRepo := postgres.NewOwnerRepository(pool)
	propertyRepo := postgres.NewPropertyRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	tenantRepo := postgres.NewTenantRepository(pool)
	expenseTypeRepo := postgres.NewExpenseTypeRepository(pool)
	tenantExpenseRepo := postgres.NewTenantExpenseRepository(pool)
	paidExpenseRepo := postgres.NewPaidExpenseRepository(pool)

	// Initialize photo storage (optional; uploads disabled without credentials)
	var photoStorage storage.PhotoRepository
	if cfg.S3.AccessKeyID != "" || cfg.S3.Endpoint != "" {
		s3Repo, err := storage.NewS3PhotoRepository(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize photo storage")
		}
		photoStorage = s3Repo
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Photo storage enabled")
	} else {
		log.Warn().Msg("Photo storage not configured; photo uploads disabled")
	}

	// Initialize WebSocket hub
	hub := ws.NewHub()

	// Initialize services
	otpSender := email.NewSender(cfg.SMTP)
	authService := service.NewAuthService(ownerRepo, otpSender, cfg.JWTSecret)
	propertyService := service.NewPropertyService(propertyRepo)
	unitService := service.NewUnitService(unitRepo, propertyRepo)
	tenantService := service.NewTenantService(tenantRepo, unitRepo)
	expenseTypeService := service.NewExpenseTypeService(expenseTypeRepo)
	tenantExpenseService := service.NewTenantExpenseService(tenantExpenseRepo, tenantRepo, expenseTypeRepo)
	tenantExpenseService.SetEventPublisher(hub)
	paidExpenseService := service.NewPaidExpenseService(paidExpenseRepo, tenantRepo, expenseTypeRepo, tenantExpenseRepo)
	paidExpenseService.SetEventPublisher(hub)
	pendingService := service.NewPendingService(propertyRepo, unitRepo, tenantRepo, tenantExpenseRepo, paidExpenseRepo)
	statementService := service.NewStatementService(tenantRepo, tenantExpenseRepo, paidExpenseRepo, expenseTypeRepo)
	photoService := service.NewPhotoService(photoStorage, propertyRepo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	otpRateLimiter := middleware.NewRateLimiter()
	defer otpRateLimiter.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	unitHandler := handler.NewUnitHandler(unitService)
	tenantHandler := handler.NewTenantHandler(tenantService)
	expenseTypeHandler := handler.NewExpenseTypeHandler(expenseTypeService)
	tenantExpenseHandler := handler.NewTenantExpenseHandler(tenantExpenseService)
	paidExpenseHandler := handler.NewPaidExpenseHandler(paidExpenseService)
	pendingHandler := handler.NewPendingHandler(pendingService)
	statementHandler := handler.NewStatementHandler(statementService)
	photoHandler := handler.NewPhotoHandler(photoService)
	wsHandler := handler.NewWebSocketHandler(hub, authService, cfg.CORSOrigins)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, authMiddleware, otpRateLimiter,
		authHandler, propertyHandler, unitHandler, tenantHandler,
		expenseTypeHandler, tenantExpenseHandler, paidExpenseHandler,
		pendingHandler, statementHandler, photoHandler, wsHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
