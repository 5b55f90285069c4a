package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adminapp "github.com/campusmart/backend/internal/application/admin"
	cartapp "github.com/campusmart/backend/internal/application/cart"
	catalogapp "github.com/campusmart/backend/internal/application/catalog"
	identityapp "github.com/campusmart/backend/internal/application/identity"
	orderapp "github.com/campusmart/backend/internal/application/order"
	sellerapp "github.com/campusmart/backend/internal/application/seller"
	"github.com/campusmart/backend/internal/infrastructure/auth"
	"github.com/campusmart/backend/internal/infrastructure/cache"
	"github.com/campusmart/backend/internal/infrastructure/config"
	"github.com/campusmart/backend/internal/infrastructure/logger"
	"github.com/campusmart/backend/internal/infrastructure/persistence"
	"github.com/campusmart/backend/internal/infrastructure/storage"
	"github.com/campusmart/backend/internal/infrastructure/telemetry"
	"github.com/campusmart/backend/internal/interfaces/http/handler"
	"github.com/campusmart/backend/internal/interfaces/http/middleware"
	"github.com/campusmart/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting CampusMart Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Tracing (optional, enabled via config)
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Initialize database connection
	db, err := persistence.NewDatabase(cfg.Database, cfg.Log, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, cfg.Telemetry.Enabled, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Redis backs the token blacklist and rate limiter; the server still
	// comes up without it, degraded to in-process fallbacks
	var blacklist auth.TokenBlacklist
	var apiLimiter, loginLimiter middleware.Limiter
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist and rate limiter. "+
			"State will not be shared across instances.",
			zap.Error(err),
		)
		blacklist = auth.NewInMemoryTokenBlacklist()
		apiLimiter = middleware.NewMemoryRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		loginLimiter = middleware.NewMemoryRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		log.Info("Redis connected successfully", zap.String("addr", cfg.Redis.Addr()))
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		apiLimiter = middleware.NewRedisRateLimiter(redisClient, cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		loginLimiter = middleware.NewRedisRateLimiter(redisClient, cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
	}

	// File storage for payment receipts and product images
	fileStorage, err := storage.New(cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize file storage", zap.Error(err))
	}
	log.Info("File storage initialized", zap.String("provider", cfg.Storage.Provider))

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	sellerRepo := persistence.NewGormSellerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	checkoutScope := persistence.NewGormCheckoutScope(db.DB)
	reviewScope := persistence.NewGormSellerReviewScope(db.DB)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	sellerService := sellerapp.NewSellerService(sellerRepo, userRepo, reviewScope, log)
	productService := catalogapp.NewProductService(productRepo, sellerRepo, log)
	cartService := cartapp.NewCartService(cartRepo, productRepo, log)
	checkoutService := orderapp.NewCheckoutService(checkoutScope, log)
	orderService := orderapp.NewOrderService(orderRepo, sellerRepo, checkoutScope, log)
	dashboardService := adminapp.NewDashboardService(userRepo, sellerRepo, productRepo, orderRepo, log)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	middleware.SetupValidator()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
	}
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	if cfg.HTTP.RateLimitEnabled {
		engine.Use(middleware.RateLimit(apiLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// JWT middleware shared by protected route groups
	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	authMW := middleware.JWTAuthMiddlewareWithConfig(jwtConfig)
	optionalAuthMW := middleware.OptionalJWTAuthMiddleware(jwtService)

	// Tighter limit on credential endpoints
	var loginLimit gin.HandlerFunc
	if cfg.HTTP.AuthRateLimitEnabled {
		loginLimit = middleware.RateLimit(loginLimiter)
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}

	// Initialize HTTP handlers
	systemHandler := handler.NewSystemHandler(db.DB)
	authHandler := handler.NewAuthHandler(authService, authMW, loginLimit)
	productHandler := handler.NewProductHandler(productService, optionalAuthMW)
	cartHandler := handler.NewCartHandler(cartService, authMW)
	orderHandler := handler.NewOrderHandler(orderService, checkoutService, fileStorage, cfg.Storage.MaxUploadSize, authMW)
	sellerHandler := handler.NewSellerHandler(sellerService, productService, orderService, fileStorage, cfg.Storage.MaxUploadSize, authMW)
	adminHandler := handler.NewAdminHandler(dashboardService, sellerService, orderService, authMW)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(systemHandler).
		Register(authHandler).
		Register(productHandler).
		Register(cartHandler).
		Register(orderHandler).
		Register(sellerHandler).
		Register(adminHandler)
	r.Setup()

	// Health check outside API versioning, for load balancers
	engine.GET("/health", systemHandler.Health)

	// Locally stored uploads are served straight from disk; S3 objects are
	// reachable through the storage base URL instead
	if cfg.Storage.Provider == "local" {
		engine.Static("/uploads", cfg.Storage.LocalDir)
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
