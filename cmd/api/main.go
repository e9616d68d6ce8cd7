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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/negociofacil/pos-api/internal/api"
	"github.com/negociofacil/pos-api/internal/config"
	"github.com/negociofacil/pos-api/internal/metrics"
	"github.com/negociofacil/pos-api/internal/middleware"
	"github.com/negociofacil/pos-api/internal/repository/postgres"
	"github.com/negociofacil/pos-api/internal/repository/redisstore"
	"github.com/negociofacil/pos-api/internal/service"
	"github.com/negociofacil/pos-api/internal/service/pubsub"
	"github.com/negociofacil/pos-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Initialize Redis pub/sub
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	repo := postgres.NewPostgresRepository(dbConnections)
	cartStore := redisstore.NewCartStore(redisClient, cfg.CartTTL)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize services
	authService := service.NewAuthService(repo, cfg, authMiddleware)
	tenantService := service.NewTenantService(repo)
	productService := service.NewProductService(repo)
	cartService := service.NewCartService(repo, cartStore)
	saleService := service.NewSaleService(repo)

	// Initialize server
	server := api.NewServer(
		authService,
		tenantService,
		productService,
		cartService,
		saleService,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		appLogger,
		redisPubSub,
		cfg.GlobalRateLimit,
	)

	// Wire up WebSocket broadcaster
	cartService.SetWebSocketBroadcaster(server.GetWebSocketHandler())

	// Start WebSocket hub
	server.StartWebSocketHub()

	// Initialize router
	router := gin.Default()
	router.Use(metrics.RequestMetrics())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup API routes
	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
