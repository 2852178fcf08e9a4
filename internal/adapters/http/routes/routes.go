package routes

import (
	"time"

	"chapa-dashboard/internal/adapters/http/handlers"
	"chapa-dashboard/internal/adapters/http/middleware"
	"chapa-dashboard/internal/adapters/persistence/repositories"
	"chapa-dashboard/internal/config"
	"chapa-dashboard/internal/core/access"
	"chapa-dashboard/internal/core/services"
	"chapa-dashboard/internal/pkg/latency"

	"github.com/gofiber/fiber/v2"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, store *repositories.Store, cfg *config.Config) {
	// Simulated network latency shared by all demo services
	sim := latency.New(
		cfg.Demo.LatencyEnabled,
		time.Duration(cfg.Demo.LatencyMinMs)*time.Millisecond,
		time.Duration(cfg.Demo.LatencyMaxMs)*time.Millisecond,
	)

	// Initialize services
	authService := services.NewAuthService(store.Users, store.Sessions, sim, cfg)
	userService := services.NewUserService(store.Users, sim)
	transactionService := services.NewTransactionService(store.Transactions, store.Users, sim)
	statsService := services.NewStatsService(store.Users, store.Transactions, sim)
	moneyRequestService := services.NewMoneyRequestService(sim)
	settingsService := services.NewSettingsService(sim)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, userService)
	moneyRequestHandler := handlers.NewMoneyRequestHandler(moneyRequestService)
	dashboardHandler := handlers.NewDashboardHandler(statsService)
	pageHandler := handlers.NewPageHandler()
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, authHandler, userHandler,
		transactionHandler, moneyRequestHandler, dashboardHandler,
		pageHandler, settingsHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	transactionHandler *handlers.TransactionHandler,
	moneyRequestHandler *handlers.MoneyRequestHandler,
	dashboardHandler *handlers.DashboardHandler,
	pageHandler *handlers.PageHandler,
	settingsHandler *handlers.SettingsHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Auth routes (login public, the rest authenticated)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Page resolution routes (authenticated users)
	pageRoutes := router.Group("/pages")
	pageRoutes.Use(middleware.AuthMiddleware(cfg))
	setupPageRoutes(pageRoutes, pageHandler)

	// Transaction routes (authenticated users)
	transactionRoutes := router.Group("/transactions")
	transactionRoutes.Use(middleware.AuthMiddleware(cfg))
	setupTransactionRoutes(transactionRoutes, transactionHandler)

	// Money request routes (authenticated users)
	moneyRequestRoutes := router.Group("/money-requests")
	moneyRequestRoutes.Use(middleware.AuthMiddleware(cfg))
	moneyRequestRoutes.Post("/", moneyRequestHandler.Create)

	// User management routes (Admin+)
	userRoutes := router.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	userRoutes.Use(middleware.PageAccess(access.PageUsers))
	setupUserRoutes(userRoutes, userHandler)

	// Admin creation routes (Super admin only)
	adminRoutes := router.Group("/admins")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.SuperAdminOnly())
	adminRoutes.Post("/", userHandler.AddAdmin)

	// Dashboard routes (Admin+)
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Use(middleware.PageAccess(access.PageAnalytics))
	setupDashboardRoutes(dashboardRoutes, dashboardHandler)

	// System settings routes (Super admin only)
	systemRoutes := router.Group("/system")
	systemRoutes.Use(middleware.AuthMiddleware(cfg))
	systemRoutes.Use(middleware.PageAccess(access.PageSystem))
	setupSystemRoutes(systemRoutes, settingsHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)

	// Protected routes
	router.Post("/logout", middleware.AuthMiddleware(cfg), handler.Logout)
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// setupPageRoutes configures page resolution routes
func setupPageRoutes(router fiber.Router, handler *handlers.PageHandler) {
	router.Get("/default", handler.Default)
	router.Get("/:page", handler.Show)
}

// setupTransactionRoutes configures transaction routes
func setupTransactionRoutes(router fiber.Router, handler *handlers.TransactionHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Post("/send", handler.SendMoney)
}

// setupUserRoutes configures user management routes
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.ListUsers)
	router.Patch("/:id/status", handler.ToggleStatus)
}

// setupDashboardRoutes configures dashboard routes
func setupDashboardRoutes(router fiber.Router, handler *handlers.DashboardHandler) {
	router.Get("/stats", handler.Stats)
	router.Get("/analytics", handler.Analytics)
}

// setupSystemRoutes configures system settings routes
func setupSystemRoutes(router fiber.Router, handler *handlers.SettingsHandler) {
	router.Get("/settings", handler.Get)
	router.Put("/settings", handler.Update)
}
