package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/internal/api/middleware"
	"github.com/northsidewear/storefront-api/internal/catalog"
)

// BrowseQueryRequest is the catalog query payload
type BrowseQueryRequest struct {
	CategorySlug string            `json:"category_slug"`
	SearchTerm   string            `json:"search_term"`
	Filters      catalog.FilterSet `json:"filters"`
	Sort         string            `json:"sort"`
}

// HandleSetBrowseQuery handles POST /v1/browse/query. A change to
// category, filters or search term resets the session's page state and
// fetches the first batch; a sort-only change reorders locally.
func HandleSetBrowseQuery(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "no session"})
			return
		}

		var req BrowseQueryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		query := catalog.Query{
			CategorySlug: req.CategorySlug,
			SearchTerm:   req.SearchTerm,
			Filters:      req.Filters,
			Sort:         catalog.ParseSort(req.Sort),
		}

		sess := deps.Catalog.Session(sessionID)
		if err := sess.SetQuery(c.Request.Context(), query); err != nil {
			logger.Error("Failed to apply catalog query", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}

		c.JSON(http.StatusOK, sess.Snapshot())
	}
}

// HandleBrowseMore handles POST /v1/browse/more: the incremental load
// trigger. A no-op request (load in flight, catalog exhausted, search
// active) still returns the current snapshot.
func HandleBrowseMore(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "no session"})
			return
		}

		sess := deps.Catalog.Session(sessionID)
		if err := sess.LoadNext(c.Request.Context()); err != nil {
			logger.Error("Failed to load next catalog page", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}

		c.JSON(http.StatusOK, sess.Snapshot())
	}
}

// HandleGetBrowse handles GET /v1/browse
func HandleGetBrowse(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "no session"})
			return
		}

		c.JSON(http.StatusOK, deps.Catalog.Session(sessionID).Snapshot())
	}
}
