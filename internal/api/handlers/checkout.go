package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/northsidewear/storefront-api/pkg/errors"
)

// CheckoutHandoffRequest asks for a prefilled chat link for one product
type CheckoutHandoffRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// CheckoutHandoffResponse carries the chat link and the message it opens
// with. Nothing is recorded; the handoff is fire-and-forget.
type CheckoutHandoffResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// HandleCheckoutHandoff handles POST /v1/checkout/handoff
func HandleCheckoutHandoff(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutHandoffRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product, err := deps.Content.ProductByID(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			logger.Error("Failed to fetch product for handoff", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "content store unavailable"})
			return
		}

		c.JSON(http.StatusOK, CheckoutHandoffResponse{
			URL:     deps.Checkout.Link(*product),
			Message: deps.Checkout.Message(*product),
		})
	}
}
