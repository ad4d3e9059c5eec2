package main

import (
	"context"
	"log"

	"pulsex/internal"
	"pulsex/internal/config"
	"pulsex/internal/container"
	"pulsex/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.Log.Level))
	internal.DefaultLogger = logger
	gin.SetMode(appConfig.Server.GinMode)

	// Create dependency injection container
	appContainer, err := container.New(appConfig, logger)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Shutdown(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	appContainer.StartSessionJanitor(ctx, appConfig.Session.TTL)

	// The dataset is loaded once before serving; a bad file is fatal
	if _, err := appContainer.LoadDataset(); err != nil {
		logger.Error("[main] Failed to load dataset: %v", err)
		logger.Sync()
		log.Fatalf("Failed to load dataset: %v", err)
	}

	// Initialize web server
	server, err := ui.NewServer(ui.Dependencies{
		Dataset:      appContainer.Dataset,
		Sessions:     appContainer.Sessions,
		RNG:          appContainer.RNG,
		Cache:        appContainer.Cache,
		Layout:       appConfig.Layout,
		ReasonPrefix: appConfig.Data.ReasonPrefix,
		SampleSeed:   appContainer.SampleSeed(),
		Logger:       logger,
	})
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	if err := server.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
