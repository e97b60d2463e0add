package main

import (
	"log"
	"time"

	"foodexpress-storefront/configs"
	"foodexpress-storefront/internal/backend"
	"foodexpress-storefront/internal/handlers"
	"foodexpress-storefront/internal/middleware"
	"foodexpress-storefront/internal/services"
	"foodexpress-storefront/internal/session"
	"foodexpress-storefront/pkg/auth"
	"foodexpress-storefront/pkg/cache"
	"foodexpress-storefront/pkg/messaging"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config := configs.LoadConfig()

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	// Parse embedded page templates
	templates, err := handlers.LoadTemplates()
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	// Session storage: redis in production, in-memory fallback so the
	// storefront still serves anonymous traffic without it
	var sessionStore session.Store
	redisCache, err := cache.NewRedisCache(config.Redis.URL, config.Redis.Password, config.Redis.DB)
	if err != nil {
		log.Printf("Redis unavailable (%v), falling back to in-memory sessions", err)
		sessionStore = session.NewMemoryStore()
	} else {
		defer redisCache.Close()
		sessionStore = session.NewRedisStore(redisCache, time.Hour*time.Duration(config.Session.TTLHours))
	}

	// Signed session cookie manager
	cookieManager := auth.NewCookieManager(config.Session.CookieSecret, config.Session.TTLHours)

	// Backend API client
	client := backend.NewClient(config.Backend.BaseURL, config.Backend.Timeout)

	// Storefront event publisher (optional)
	var publisher *messaging.Publisher
	if config.Kafka.Enabled {
		publisher = messaging.NewPublisher(config.Kafka.Brokers, config.Kafka.Topic)
		defer publisher.Close()
	}

	// Initialize services
	catalogService := services.NewCatalogService(client)
	cartService := services.NewCartService(client, publisher)
	authService := services.NewAuthService(client, sessionStore, publisher)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore, cookieManager, config.Session.CookieName)

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(catalogService, sessionStore)
	restaurantHandler := handlers.NewRestaurantHandler(catalogService, cartService, sessionStore)
	cartHandler := handlers.NewCartHandler(cartService, sessionStore)
	authHandler := handlers.NewAuthHandler(authService, sessionStore)

	// Initialize Gin router
	router := gin.New()
	router.SetHTMLTemplate(templates)

	// Global middleware
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(sessionMiddleware.Attach())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "foodexpress-storefront",
		})
	})

	// Register routes
	homeHandler.RegisterRoutes(router)
	restaurantHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)

	// Unknown paths land on the listing
	router.NoRoute(func(c *gin.Context) {
		c.Redirect(302, "/")
	})

	log.Printf("Storefront starting on port %s", config.Server.Port)
	log.Fatal(router.Run(":" + config.Server.Port))
}
