package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menu-eva/internal/auth"
	"menu-eva/internal/config"
	"menu-eva/internal/database"
	"menu-eva/internal/handler"
	"menu-eva/internal/repository"
	"menu-eva/internal/router"
	"menu-eva/internal/service"
	"menu-eva/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting menu-eva API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Apply the schema and seed the demo menu on first run
	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to ensure database schema: %w", err)
	}
	if err := database.SeedIfEmpty(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	promotionRepo := repository.NewPromotionRepository(pool, logger)
	discountRepo := repository.NewDiscountRepository(pool, logger)

	// Initialize image storage with S3 first when enabled, then local
	// disk, then inline base64 as the last resort
	backends := make([]storage.Backend, 0, 3)
	if cfg.Upload.S3.Enabled {
		s3Backend, err := storage.NewS3(ctx, cfg.Upload.S3, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 storage, falling back to local file system only")
		} else {
			backends = append(backends, s3Backend)
		}
	} else {
		logger.Info().Msg("using local file system for image uploads (S3 disabled)")
	}
	backends = append(backends,
		storage.NewLocal(cfg.Upload.Dir, logger),
		storage.NewBase64(cfg.Upload.Base64MaxSize, logger),
	)
	store := storage.NewCascade(logger, backends...)

	// Initialize services
	categoryService := service.NewCategoryService(categoryRepo, logger)
	productService := service.NewProductService(productRepo, logger)
	promotionService := service.NewPromotionService(promotionRepo, logger)
	discountService := service.NewDiscountService(discountRepo, logger)
	authService := auth.NewService(cfg.Auth, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Categories: handler.NewCategoryHandler(categoryService, logger),
		Products:   handler.NewProductHandler(productService, logger),
		Promotions: handler.NewPromotionHandler(promotionService, logger),
		Discounts:  handler.NewDiscountHandler(discountService, logger),
		Auth:       handler.NewAuthHandler(authService, logger),
		Admin:      handler.NewAdminHandler(productService, logger),
		Upload:     handler.NewUploadHandler(store, cfg.Upload, logger),
	}

	// Initialize router
	mux := router.New(handlers, authService, cfg.Upload.Dir, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
