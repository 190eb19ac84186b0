package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/task-tracker-api/internal/config"
	"github.com/mizuki-dev/task-tracker-api/internal/database"
	"github.com/mizuki-dev/task-tracker-api/internal/handlers"
	"github.com/mizuki-dev/task-tracker-api/internal/middleware"
	"github.com/mizuki-dev/task-tracker-api/internal/repository"
	"github.com/mizuki-dev/task-tracker-api/internal/services"
)

func main() {
	startTime := time.Now()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)
	authService := services.NewAuthService(userRepo)
	taskService := services.NewTaskService(taskRepo)
	monitorService := services.NewMonitorService(statsRepo, startTime)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	taskHandler := handlers.NewTaskHandler(taskService)
	monitoringHandler := handlers.NewMonitoringHandler(monitorService)

	// Initialize Gin router
	r := gin.Default()

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Monitoring routes (public)
		api.GET("/health", monitoringHandler.Health)
		api.GET("/metrics", monitoringHandler.Metrics)

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(tokenService))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	// Start server
	addr := cfg.Host + ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
