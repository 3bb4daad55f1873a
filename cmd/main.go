package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"golang-storefront-gateway/configs"
	"golang-storefront-gateway/internal/checkout"
	"golang-storefront-gateway/internal/clients"
	"golang-storefront-gateway/internal/handlers"
	"golang-storefront-gateway/internal/middleware"
	"golang-storefront-gateway/internal/services"
	"golang-storefront-gateway/pkg/auth"
	"golang-storefront-gateway/pkg/cache"
	"golang-storefront-gateway/pkg/messaging"
)

func main() {
	// Load configuration
	config := configs.LoadConfig()

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	// Initialize Redis cache
	redisCache := cache.NewRedisCache(config.Redis.URL, config.Redis.Password, config.Redis.DB)
	if redisCache == nil {
		log.Fatal("Failed to connect to Redis")
	}
	defer redisCache.Close()
	invalidator := cache.NewInvalidator(redisCache)

	// Initialize Kafka
	kafkaProducer := messaging.NewKafkaProducer(config.Kafka.Brokers)
	defer kafkaProducer.Close()

	// Initialize JWT manager (refresh: 30 days)
	jwtManager := auth.NewJWTManager(config.JWT.SecretKey, config.JWT.ExpiryHours, 30)

	// Initialize upstream service clients
	timeout := time.Duration(config.Upstream.TimeoutSeconds) * time.Second
	catalogClient := clients.NewCatalogClient(config.Upstream.CatalogURL, timeout)
	cartClient := clients.NewCartClient(config.Upstream.CartURL, timeout)
	orderClient := clients.NewOrderClient(config.Upstream.OrderURL, timeout)
	accountClient := clients.NewAccountClient(config.Upstream.AccountURL, timeout)

	// Checkout wizard drafts live in memory, per signed-in user
	wizardStore := checkout.NewStore()

	// Initialize services
	authService := services.NewAuthService(accountClient, jwtManager, redisCache, invalidator)
	productService := services.NewProductService(catalogClient, redisCache, invalidator)
	reviewService := services.NewReviewService(catalogClient, redisCache, invalidator)
	cartService := services.NewCartService(cartClient, redisCache, invalidator)
	checkoutService := services.NewCheckoutService(wizardStore, cartClient, orderClient, invalidator, kafkaProducer, config.Kafka.EventsTopic)
	orderService := services.NewOrderService(orderClient, redisCache, invalidator)
	addressService := services.NewAddressService(accountClient, redisCache, invalidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, reviewService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)
	addressHandler := handlers.NewAddressHandler(addressService)

	// Initialize Gin router
	router := gin.New()

	// CORS middleware
	router.Use(middleware.CORSMiddleware())

	// Global middleware
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "golang-storefront-gateway",
		})
	})

	// API routes
	api := router.Group("/api/v1")

	// Register routes
	authHandler.RegisterRoutes(api, authMiddleware)
	productHandler.RegisterRoutes(api, authMiddleware)
	cartHandler.RegisterRoutes(api, authMiddleware)
	checkoutHandler.RegisterRoutes(api, authMiddleware)
	orderHandler.RegisterRoutes(api, authMiddleware)
	addressHandler.RegisterRoutes(api, authMiddleware)

	log.Printf("Server starting on port %s", config.Server.Port)
	log.Fatal(router.Run(":" + config.Server.Port))
}
