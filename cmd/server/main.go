package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"chapa-dashboard/internal/adapters/http/middleware"
	"chapa-dashboard/internal/adapters/http/routes"
	"chapa-dashboard/internal/adapters/persistence/repositories"
	"chapa-dashboard/internal/config"
	"chapa-dashboard/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title Chapa Dashboard API
// @version 1.0
// @description Role-based financial dashboard demo backend
// @contact.name API Support
// @contact.email support@chapa.app

// @host dashboard.chapa.app
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Create in-memory store (sessions optionally snapshot to disk)
	store, err := repositories.NewStore(cfg.Demo.SessionFile)
	if err != nil {
		log.Fatalf("❌ Failed to create store: %v", err)
	}

	// Seed demo data
	if err := config.SeedDemoData(store); err != nil {
		log.Fatalf("❌ Failed to seed demo data: %v", err)
	}

	// Start cron service for scheduled demo resets
	cronService := services.NewCronService(store, cfg)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Chapa Dashboard API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, store, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
