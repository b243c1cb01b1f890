package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partsHub/app/echo-server/router"
	"partsHub/business/category"
	"partsHub/business/orders"
	"partsHub/business/product"
	"partsHub/business/ranking"
	userService "partsHub/business/user"
	"partsHub/internal/middleware"
	psqlRepo "partsHub/internal/repository/postgres"
	redisRepo "partsHub/internal/repository/redis"
	"partsHub/internal/rest"
	"partsHub/pkg/config"
	"partsHub/pkg/database"
	redisdb "partsHub/pkg/database/redis"
	"partsHub/pkg/logger"
	"partsHub/pkg/metrics"
	"partsHub/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting PartsHub", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Trending cache is optional, searches just recompute without it
	var trendingCache ranking.TrendingCache
	if redisClient, err := redisdb.InitRedis(cfg); err != nil {
		logger.Warn("Redis unavailable, trending feed will recompute every request", "error", err)
	} else {
		trendingCache = redisRepo.NewTrendingCacheRepository(redisClient)
		logger.Info("Redis connected successfully")
	}

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	productsRepo := psqlRepo.NewProductRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)
	searchEventRepo := psqlRepo.NewSearchEventRepository(db)

	// Init service
	userSvc := userService.NewUserService(userRepo, validate)
	productSvc := product.NewProductService(productsRepo)
	ordersSvc := orders.NewOrdersService(ordersRepo, productsRepo)
	categorySvc := category.NewCategoryService(categoryRepo)
	rankingSvc := ranking.NewRankingService(
		productsRepo,
		trendingCache,
		searchEventRepo,
		time.Duration(cfg.Ranking.TrendingCacheTTLSeconds)*time.Second,
		cfg.Ranking.TrendingFeedSize,
	)

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	productHandler := rest.NewProductHandler(productSvc)
	ordersHandler := rest.NewOrdersHandler(ordersSvc)
	categoryHandler := rest.NewCategoryHandler(categorySvc)
	searchHandler := rest.NewSearchHandler(rankingSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Metrics
	metrics.Init()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()
	sellerOnly := middleware.SellerOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly)
	router.SetupProductRoutes(api, productHandler, authRequired, sellerOnly)
	router.SetupSearchRoutes(api, searchHandler)
	router.SetOrdersRoutes(api, ordersHandler)
	router.SetupCategoryRoutes(api, categoryHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
