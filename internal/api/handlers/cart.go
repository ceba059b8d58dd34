package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/internal/api/middleware"
	"github.com/northsidewear/storefront-api/internal/domain"
	"github.com/northsidewear/storefront-api/pkg/errors"
)

// AddCartItemRequest is the add-to-cart payload
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "no session"})
			return
		}

		items, err := deps.Cart.Items(c.Request.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to load cart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if items == nil {
			items = []domain.CartItem{}
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// HandleAddCartItem handles POST /v1/cart/items. Adding an already-present
// (product, size) pair is a no-op, not an error. An unselected size is
// rejected; the UI is expected to disable the control, this is the safety
// net.
func HandleAddCartItem(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "no session"})
			return
		}

		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if req.Size == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "size is required"})
			return
		}

		product, err := deps.Content.ProductByID(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			logger.Error("Failed to fetch product for cart", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}

		added, err := deps.Cart.Add(c.Request.Context(), sessionID, *product, req.Size)
		if err != nil {
			logger.Error("Failed to add cart item", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"added": added})
	}
}

// HandleRemoveCartItem handles DELETE /v1/cart/items/:productID
func HandleRemoveCartItem(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "no session"})
			return
		}

		productID := c.Param("productID")
		size := c.Query("size")
		if size == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size is required"})
			return
		}

		removed, err := deps.Cart.Remove(c.Request.Context(), sessionID, productID, size)
		if err != nil {
			logger.Error("Failed to remove cart item", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"removed": removed})
	}
}

// HandleCartContains handles GET /v1/cart/contains. Without a size, any
// size of the product matches.
func HandleCartContains(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "no session"})
			return
		}

		productID := c.Query("product_id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing product_id"})
			return
		}

		inCart, err := deps.Cart.Contains(c.Request.Context(), sessionID, productID, c.Query("size"))
		if err != nil {
			logger.Error("Failed to query cart membership", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"in_cart": inCart})
	}
}

// HandleCartEvents handles GET /v1/cart/events: a server-sent-event stream
// that emits a payload-less cartUpdated signal on every cart change.
// Subscribers re-fetch the collection themselves.
func HandleCartEvents(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ch, unsubscribe := deps.Cart.Subscribe()
		defer unsubscribe()

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")

		c.Stream(func(w io.Writer) bool {
			select {
			case <-c.Request.Context().Done():
				return false
			case <-ch:
				c.SSEvent("cartUpdated", "")
				return true
			}
		})
	}
}
