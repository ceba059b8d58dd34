package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/internal/api"
	"github.com/northsidewear/storefront-api/internal/api/handlers"
	"github.com/northsidewear/storefront-api/internal/cart"
	"github.com/northsidewear/storefront-api/internal/catalog"
	"github.com/northsidewear/storefront-api/internal/checkout"
	"github.com/northsidewear/storefront-api/internal/config"
	"github.com/northsidewear/storefront-api/internal/content"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Connect to Redis (cart persistence)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancel()
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cancel()

	// Content store client and typed adapter
	contentClient := content.NewClient(cfg.Content, logger)
	adapter := content.NewAdapter(contentClient, logger)

	// Cart and catalog state
	cartStore := cart.NewRedisStore(redisClient, cart.DefaultTTL, logger)
	cartService := cart.NewService(cartStore, logger)
	catalogManager := catalog.NewManager(adapter, cfg.Catalog.PageSize, logger)

	deps := &handlers.Deps{
		Content:      adapter,
		Catalog:      catalogManager,
		Cart:         cartService,
		Checkout:     checkout.NewBuilder(cfg.Store),
		PageSize:     cfg.Catalog.PageSize,
		HomePageSize: cfg.Catalog.HomePageSize,
	}

	router := api.NewRouter(cfg, deps, logger)

	logger.Info("Starting storefront API",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
