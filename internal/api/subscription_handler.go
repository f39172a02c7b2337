package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitfx-backend-go/internal/core"
)

// SubscriptionHandler handles API endpoints for subscription state.
type SubscriptionHandler struct {
	subscriptionService core.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(ss core.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: ss}
}

// GetSubscriptionStatus handles GET /subscription
func (h *SubscriptionHandler) GetSubscriptionStatus(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}
	c.JSON(http.StatusOK, h.subscriptionService.Status(c.Request.Context(), userID.(string)))
}

// GetFeatureAccess handles GET /subscription/features
func (h *SubscriptionHandler) GetFeatureAccess(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}
	c.JSON(http.StatusOK, h.subscriptionService.Features(c.Request.Context(), userID.(string)))
}
