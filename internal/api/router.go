package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/internal/api/handlers"
	"github.com/northsidewear/storefront-api/internal/api/middleware"
	"github.com/northsidewear/storefront-api/internal/config"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, deps *handlers.Deps, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Catalog reads (stateless)
		v1.GET("/products", handlers.HandleListProducts(deps, logger))
		v1.GET("/products/:id", handlers.HandleGetProduct(deps, logger))
		v1.GET("/products/:id/related", handlers.HandleRelatedProducts(deps, logger))
		v1.GET("/search", handlers.HandleSearchProducts(deps, logger))
		v1.GET("/featured", handlers.HandleFeaturedProducts(deps, logger))
		v1.POST("/filter", handlers.HandleFilterProducts(deps, logger))
		v1.GET("/filters", handlers.HandleFilterValues(deps, logger))
		v1.GET("/categories", handlers.HandleListCategories(deps, logger))
		v1.GET("/banners", handlers.HandleActiveBanners(deps, logger))

		// Session-scoped routes (browse state and cart)
		sessionRoutes := v1.Group("")
		sessionRoutes.Use(middleware.SessionMiddleware())
		{
			sessionRoutes.POST("/browse/query", handlers.HandleSetBrowseQuery(deps, logger))
			sessionRoutes.POST("/browse/more", handlers.HandleBrowseMore(deps, logger))
			sessionRoutes.GET("/browse", handlers.HandleGetBrowse(deps, logger))

			sessionRoutes.GET("/cart", handlers.HandleGetCart(deps, logger))
			sessionRoutes.POST("/cart/items", handlers.HandleAddCartItem(deps, logger))
			sessionRoutes.DELETE("/cart/items/:productID", handlers.HandleRemoveCartItem(deps, logger))
			sessionRoutes.GET("/cart/contains", handlers.HandleCartContains(deps, logger))
			sessionRoutes.GET("/cart/events", handlers.HandleCartEvents(deps, logger))

			sessionRoutes.POST("/checkout/handoff", handlers.HandleCheckoutHandoff(deps, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
