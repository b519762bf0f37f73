package routes

import (
	"leadtrack/internal/adapters/http/handlers"
	"leadtrack/internal/adapters/http/middleware"
	"leadtrack/internal/adapters/persistence/repositories"
	"leadtrack/internal/config"
	"leadtrack/internal/core/services"
	"leadtrack/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	// Initialize repositories
	employeeRepo := repositories.NewEmployeeRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	checkInRepo := repositories.NewCheckInRepository(db)

	// Session store
	sessionStore := session.NewStore(redisClient, cfg.Session.TTL)

	// Initialize services
	authService := services.NewAuthService(employeeRepo)
	clientService := services.NewClientService(db, clientRepo)
	leadService := services.NewLeadService(leadRepo)
	checkInService := services.NewCheckInService(checkInRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(redisClient)
	authHandler := handlers.NewAuthHandler(authService, sessionStore, cfg)
	clientHandler := handlers.NewClientHandler(clientService)
	leadHandler := handlers.NewLeadHandler(leadService)
	checkInHandler := handlers.NewCheckInHandler(checkInService)
	adminHandler := handlers.NewAdminHandler(authService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API group
	api := app.Group("/api")
	requireSession := middleware.RequireSession(sessionStore)

	// Auth routes
	authRoutes := api.Group("/auth/employee")
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/logout", requireSession, authHandler.Logout)
	authRoutes.Get("/current", requireSession, authHandler.Current)

	// Client routes
	clientRoutes := api.Group("/clients")
	clientRoutes.Use(requireSession)
	clientRoutes.Post("/", clientHandler.Create)
	clientRoutes.Get("/", clientHandler.List)

	// Lead routes
	leadRoutes := api.Group("/leads")
	leadRoutes.Use(requireSession)
	leadRoutes.Get("/", leadHandler.List)
	leadRoutes.Get("/statistics", leadHandler.Statistics)
	leadRoutes.Patch("/:id/status", leadHandler.UpdateStatus)

	// Check-in routes
	checkInRoutes := api.Group("/checkins")
	checkInRoutes.Use(requireSession)
	checkInRoutes.Post("/", checkInHandler.Create)
	checkInRoutes.Get("/active", checkInHandler.Active)
	checkInRoutes.Patch("/:id/checkout", checkInHandler.CheckOut)

	// Admin routes — session-gated only, no server-side role check
	// (role-based gating lives in the UI, as in the source system)
	adminRoutes := api.Group("/admin")
	adminRoutes.Use(requireSession)
	adminRoutes.Get("/employees", adminHandler.ListEmployees)
	adminRoutes.Post("/employees", adminHandler.CreateEmployee)
	adminRoutes.Delete("/employees/:id", adminHandler.DeleteEmployee)
}
