// Package main provides the entry point for the TuneGrab service.
// @title TuneGrab API
// @version 1.0
// @description Search YouTube by keyword and download the audio of a result as an MP3 file.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tunegrab/tunegrab/docs" // Import for swagger docs
	"github.com/tunegrab/tunegrab/internal/api/handlers"
	"github.com/tunegrab/tunegrab/internal/api/router"
	"github.com/tunegrab/tunegrab/internal/config"
	"github.com/tunegrab/tunegrab/internal/services/downloader"
	"github.com/tunegrab/tunegrab/internal/services/search"
	"github.com/tunegrab/tunegrab/internal/services/youtube"
	"github.com/tunegrab/tunegrab/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting TuneGrab service")

	// Initialize services
	searchService := search.NewService(search.NewYtDlpProvider(cfg.Search.BinaryPath), cfg.Search.MaxResults)
	downloadService := downloader.NewDownloader(downloader.NewYtDlpRunner(cfg.Download.BinaryPath), cfg.Download.ScratchDir)
	youtubeClient := youtube.NewClient()

	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(searchService)
	downloadHandler := handlers.NewDownloadHandler(downloadService)
	videoHandler := handlers.NewVideoHandler(youtubeClient)
	healthHandler := handlers.NewHealthHandler(&cfg.Download)

	// Initialize router
	r := router.NewRouter(cfg, searchHandler, downloadHandler, videoHandler, healthHandler)

	// Start server
	go func() {
		logger.Infof("Starting server on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := r.Start(); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := r.Shutdown(ctx); err != nil {
		logger.Errorf("Failed to shut down server: %v", err)
	}

	logger.Info("Server shutdown complete")
}
