package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/designxpo/poonam-cosmetics-backend/config"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/controller"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/service"
	"github.com/designxpo/poonam-cosmetics-backend/internal/db"
	"github.com/designxpo/poonam-cosmetics-backend/internal/middleware"
	"github.com/designxpo/poonam-cosmetics-backend/internal/router"
	"github.com/designxpo/poonam-cosmetics-backend/internal/scheduler"
	"github.com/designxpo/poonam-cosmetics-backend/internal/storage"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/redis"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/whatsapp"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Poonam Cosmetics Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed base catalog (no-op when data exists)
	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Redis backs the token blacklist and the review stats cache. The server
	// still runs without it, with those features degraded.
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Failed to connect to Redis", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	brandRepo := repository.NewBrandRepository(db.GetDB())
	bannerRepo := repository.NewBannerRepository(db.GetDB())
	pageBannerRepo := repository.NewPageBannerRepository(db.GetDB())
	collectionRepo := repository.NewCollectionRepository(db.GetDB())
	cartRepo := repository.NewCartRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(userRepo, service.AuthConfig{
		JWTSecret:     cfg.JWT.Secret,
		AccessExpiry:  cfg.JWT.AccessTokenExpiry,
		RefreshExpiry: cfg.JWT.RefreshTokenExpiry,
	})
	productService := service.NewProductService(productRepo, categoryRepo, brandRepo)
	catalogService := service.NewCatalogService(categoryRepo, brandRepo)
	contentService := service.NewContentService(bannerRepo, pageBannerRepo, collectionRepo, productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)

	links := whatsapp.NewLinkBuilder(cfg.Store.WhatsAppNumber, cfg.Store.StoreName)
	orderService := service.NewOrderService(
		orderRepo, productRepo, cartRepo, db.GetDB(), links,
		cfg.Store.DeliveryFee, cfg.Store.FreeDeliveryThreshold,
	)
	orderExporter := service.NewOrderExporter(orderRepo)
	reviewService := service.NewReviewService(reviewRepo, productRepo)

	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService)
	catalogController := controller.NewCatalogController(catalogService)
	contentController := controller.NewContentController(contentService)
	cartController := controller.NewCartController(cartService)
	orderController := controller.NewOrderController(orderService, orderExporter)
	reviewController := controller.NewReviewController(reviewService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Background review stats refresh
	statsScheduler := scheduler.NewReviewStatsScheduler(reviewService)
	if err := statsScheduler.Start(); err != nil {
		logger.Warn("Failed to start review stats scheduler", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer statsScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		catalogController,
		contentController,
		cartController,
		orderController,
		reviewController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
