package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleListCategories handles GET /v1/categories
func HandleListCategories(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := deps.Content.Categories(c.Request.Context())
		if err != nil {
			logger.Error("Failed to fetch categories", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": categories})
	}
}

// HandleFilterValues handles GET /v1/filters: the distinct values present
// across the catalog for each filterable attribute
func HandleFilterValues(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, err := deps.Content.FilterValues(c.Request.Context())
		if err != nil {
			logger.Error("Failed to fetch filter values", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}
		c.JSON(http.StatusOK, values)
	}
}

// HandleActiveBanners handles GET /v1/banners
func HandleActiveBanners(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		banners, err := deps.Content.ActiveBanners(c.Request.Context())
		if err != nil {
			logger.Error("Failed to fetch banners", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": banners})
	}
}
