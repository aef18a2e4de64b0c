// main.go
package main

import (
	"context"
	"log"
	"time"

	"seatsync/cmd"
	"seatsync/internal/data/repository"
	"seatsync/internal/hold"
	"seatsync/internal/wire"
	"seatsync/internal/ws"
	"seatsync/pkg/database"
	"seatsync/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Notification bus and hold registry, one of each per process
	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	registry := hold.NewRegistry(
		time.Duration(config.Hold.TTLMinutes)*time.Minute,
		hub,
		logger,
	)
	registry.StartSweeper(ctx, time.Duration(config.Hold.SweepSeconds)*time.Second)

	// Wire all dependencies
	app := wire.Wiring(repos, registry, hub, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
