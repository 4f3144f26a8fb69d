package main

import (
	"log"
	"time"

	"temp_dashboard/internal/config"
	"temp_dashboard/internal/database"
	"temp_dashboard/internal/handlers"
	"temp_dashboard/internal/middleware"
	"temp_dashboard/internal/migrations"
	"temp_dashboard/internal/redis"
	"temp_dashboard/internal/repository"
	"temp_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db, cfg); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis (best-effort cache; the API works without it)
	cache, err := redis.Initialize(cfg.RedisURL, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		log.Printf("Warning: Redis unavailable, order cache disabled: %v", err)
		cache = nil
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	sequenceRepo := repository.NewSequenceRepository()

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTL)*time.Minute)
	customerService := services.NewCustomerService(customerRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(db, orderRepo, orderItemRepo, customerRepo, productRepo, sequenceRepo, cache)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)

	// Setup routes
	router := gin.Default()
	router.Static("/uploads", cfg.UploadDir)

	api := router.Group("/api/v1")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register", authHandler.Register)

		protected := api.Group("")
		protected.Use(middleware.AuthRequired(authService))
		{
			protected.GET("/customers", customerHandler.GetCustomers)
			protected.GET("/customers/:id", customerHandler.GetCustomerByID)
			protected.POST("/customers", customerHandler.CreateCustomer)
			protected.PUT("/customers/:id", customerHandler.UpdateCustomer)
			protected.DELETE("/customers/:id", customerHandler.DeleteCustomer)

			protected.GET("/products", productHandler.GetProducts)
			protected.GET("/products/:id", productHandler.GetProductByID)
			protected.POST("/products", productHandler.CreateProduct)
			protected.PUT("/products/:id", productHandler.UpdateProduct)
			protected.DELETE("/products/:id", productHandler.DeleteProduct)

			protected.GET("/orders", orderHandler.GetOrders)
			protected.GET("/orders/:id", orderHandler.GetOrderByID)
			protected.POST("/orders", orderHandler.CreateOrder)
			protected.PUT("/orders/:id", orderHandler.UpdateOrder)
			protected.DELETE("/orders/:id", orderHandler.DeleteOrder)

			protected.POST("/upload", uploadHandler.UploadFile)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
