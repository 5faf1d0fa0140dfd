package main

import (
	"log"

	"learnhub/backend/auth"
	"learnhub/backend/config"
	"learnhub/backend/exam"
	"learnhub/backend/routes"
	"learnhub/backend/store"
	"learnhub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Build the process-wide stores and services
	sessions := store.NewSessionStore()
	catalog := store.NewCatalogStore()
	prefs := store.NewPrefsStore(cfg.StateFile)

	// Restore a persisted session, if any
	if user := prefs.LoadSession(); user != nil {
		sessions.Set(user)
	}

	svc := &routes.Services{
		Sessions: sessions,
		Catalog:  catalog,
		Prefs:    prefs,
		Auth:     auth.NewService(sessions, prefs),
		Exams:    exam.NewManager(catalog),
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(utils.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, svc, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
