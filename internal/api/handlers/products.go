package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/internal/domain"
	"github.com/northsidewear/storefront-api/pkg/errors"
)

// ProductListResponse is the paginated browse response
type ProductListResponse struct {
	Items   []domain.Product `json:"items"`
	Page    int              `json:"page"`
	HasMore bool             `json:"has_more"`
}

// HandleListProducts handles GET /v1/products
func HandleListProducts(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return
		}
		categorySlug := c.Query("category")

		items, err := deps.Content.ProductsPaginated(c.Request.Context(), page, deps.PageSize, categorySlug)
		if err != nil {
			logger.Error("Failed to fetch products page", zap.Error(err), zap.Int("page", page))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}

		c.JSON(http.StatusOK, ProductListResponse{
			Items:   items,
			Page:    page,
			HasMore: len(items) == deps.PageSize,
		})
	}
}

// HandleSearchProducts handles GET /v1/search. Search results are
// one unpaginated batch.
func HandleSearchProducts(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := c.Query("q")
		if term == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing search term"})
			return
		}

		items, err := deps.Content.Search(c.Request.Context(), term)
		if err != nil {
			logger.Error("Failed to search products", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}

		c.JSON(http.StatusOK, ProductListResponse{Items: items, Page: 1, HasMore: false})
	}
}

// HandleGetProduct handles GET /v1/products/:id
func HandleGetProduct(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		product, err := deps.Content.ProductByID(c.Request.Context(), id)
		if err != nil {
			if errors.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			logger.Error("Failed to fetch product", zap.Error(err), zap.String("id", id))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// HandleRelatedProducts handles GET /v1/products/:id/related
func HandleRelatedProducts(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		limit, err := strconv.Atoi(c.DefaultQuery("limit", "4"))
		if err != nil || limit < 1 {
			limit = 4
		}

		product, err := deps.Content.ProductByID(c.Request.Context(), id)
		if err != nil {
			if errors.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			logger.Error("Failed to fetch product", zap.Error(err), zap.String("id", id))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}

		items, err := deps.Content.Related(c.Request.Context(), product.ID, product.Category.Slug, limit)
		if err != nil {
			logger.Error("Failed to fetch related products", zap.Error(err), zap.String("id", id))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// HandleFeaturedProducts handles GET /v1/featured. The result is capped at
// the home-grid size unless a limit override is given.
func HandleFeaturedProducts(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := deps.Content.Featured(c.Request.Context())
		if err != nil {
			logger.Error("Failed to fetch featured products", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}

		limit := deps.HomePageSize
		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// HandleFilterProducts handles POST /v1/filter
func HandleFilterProducts(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domain.Filters
		if err := c.ShouldBindJSON(&filters); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		items, err := deps.Content.Filtered(c.Request.Context(), filters)
		if err != nil {
			logger.Error("Failed to fetch filtered products", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}
