package main

import (
	"log"

	"webstar/startpage-worker/internal/api"
	"webstar/startpage-worker/internal/api/controllers"
	"webstar/startpage-worker/internal/config"
	"webstar/startpage-worker/internal/handlers"
	"webstar/startpage-worker/internal/logger"
	"webstar/startpage-worker/internal/services"
	"webstar/startpage-worker/pkg/startpage"

	_ "webstar/startpage-worker/docs" // Swagger generated docs
)

// @title Startpage Worker API
// @version 1.0
// @description A REST API that searches Startpage and returns parsed web, image, video, news and place results, autocomplete suggestions and instant answers.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @schemes http https
func main() {
	// Load configuration from defaults, CONFIG_FILE and environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	// Route the [Component] lines of the handlers through the same logger
	log.SetFlags(0)
	log.SetOutput(appLog.Writer())

	client, err := startpage.New(startpage.Options{
		Proxy:   cfg.Proxy,
		Timeout: cfg.TimeoutDuration(),
		Delay:   cfg.DelayDuration(),
		Logger:  appLog,
	})
	if err != nil {
		appLog.Fatalf("Failed to initialize Startpage client: %v", err)
	}
	if cfg.Proxy != "" {
		appLog.Infof("Startpage client initialized - using proxy %s", cfg.Proxy)
	}
	appLog.Infof("Startpage client initialized - timeout=%s, delay=%s", cfg.TimeoutDuration(), client.Delay())

	usageTracker := handlers.NewUsageTrackerHandler()
	searchHandler := handlers.NewStartpageHandler(client, usageTracker)

	batchProcessor := services.NewBatchProcessor(client.Async(), usageTracker)
	batchController := controllers.NewBatchController(cfg.BatchToken, batchProcessor)
	if cfg.BatchToken == "" {
		appLog.Warn("BATCH_TOKEN not set - batch endpoint is open")
	}

	// Setup router
	router := api.NewRouter(appLog, searchHandler, batchController)

	// Start server
	appLog.Infof("Server starting on port %s", cfg.Port)
	appLog.Infof("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		appLog.Fatalf("Failed to start server: %v", err)
	}
}
