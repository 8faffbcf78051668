package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"shikhi_backend/config"
	"shikhi_backend/database"
	"shikhi_backend/jobs"
	"shikhi_backend/middleware"
	"shikhi_backend/routes"
	"shikhi_backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Shared in-memory state (per-process only)
	cache := utils.NewTTLCache(time.Duration(cfg.CatalogCacheTTL) * time.Second)
	mailer := utils.NewMailer(cfg, logger)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))
	app.Use(middleware.RateLimitMiddleware(cfg))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, cache, mailer, logger)

	// Background jobs: cache sweep and the daily analytics rollup
	scheduler := jobs.StartScheduler(db, cache, logger)
	defer scheduler.Stop()

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
