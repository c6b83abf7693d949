package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rayagrigorova/pawfinder/internal/handlers"
	"github.com/rayagrigorova/pawfinder/internal/metrics"
	"github.com/rayagrigorova/pawfinder/internal/middleware"
	"github.com/rayagrigorova/pawfinder/internal/models"
	"github.com/rayagrigorova/pawfinder/internal/repositories"
	"github.com/rayagrigorova/pawfinder/internal/services"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	// AutoMigrate models
	err := db.AutoMigrate(
		&models.User{},
		&models.RegistrationCode{},
		&models.Shelter{},
		&models.AdoptionPost{},
		&models.Subscription{},
		&models.Notification{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	metrics.MustRegister()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	shelterRepo := repositories.NewPostgresShelterRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	subscriptionRepo := repositories.NewPostgresSubscriptionRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	// --- Initialize Services ---
	registrationService := services.NewRegistrationService(db)
	postService := services.NewPostService(db, shelterRepo)
	subscriptionService := services.NewSubscriptionService(postRepo, subscriptionRepo)
	commentService := services.NewCommentService(postRepo, commentRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(registrationService, userRepo)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())

	postHandler := handlers.NewPostHandler(postService, postRepo, commentRepo, userRepo)
	postHandler.RegisterPostRoutes(api)
	log.Println("Adoption post routes configured.")

	shelterHandler := handlers.NewShelterHandler(shelterRepo)
	shelterHandler.RegisterShelterRoutes(api)
	log.Println("Shelter routes configured.")

	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, userRepo)
	subscriptionHandler.RegisterSubscriptionRoutes(api)
	log.Println("Subscription routes configured.")

	commentHandler := handlers.NewCommentHandler(commentService, userRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
