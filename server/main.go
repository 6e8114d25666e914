package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"image-convert/internal/config"
	"image-convert/internal/http/handlers"
	"image-convert/internal/http/routes"
	"image-convert/internal/services/cleanup"
	"image-convert/internal/services/metadata"
	"image-convert/internal/services/processor"
	"image-convert/internal/services/storage"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize services
	preserver := metadata.NewPreserver(logger)
	defer preserver.Close()

	imageProcessor := processor.New(preserver, logger)

	var cache *storage.Cache
	if cfg.Redis.Enabled() {
		cache = storage.NewCache(cfg.Redis)
		defer cache.Close()
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		logger.Fatal("Failed to create upload directory", zap.Error(err))
	}

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()

	janitor := cleanup.NewJanitor(afero.NewOsFs(), cfg.Upload.Dir, cfg.Cleanup.MaxAge, cfg.Cleanup.Interval, logger)
	go janitor.Start(janitorCtx)

	// Initialize handlers
	convertHandler := handlers.NewConvertHandler(imageProcessor, cache, logger, cfg)

	router := routes.NewRouter(convertHandler, logger, cfg.Upload.MaxFileSize)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopJanitor()

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
