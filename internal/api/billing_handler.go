package api

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitfx-backend-go/internal/core"
	"fitfx-backend-go/internal/models"
)

// BillingHandler handles API endpoints for plan listing and the payment
// provider webhook.
type BillingHandler struct {
	billingService core.BillingService
	webhookSecret  string
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(bs core.BillingService, webhookSecret string) *BillingHandler {
	return &BillingHandler{billingService: bs, webhookSecret: webhookSecret}
}

// ListPlans handles GET /billing/plans
func (h *BillingHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.billingService.Plans())
}

// HandlePaymentWebhook handles POST /billing/webhooks/payment.
// The provider authenticates with a shared secret header instead of a user
// token, so this route is mounted without the auth middleware.
func (h *BillingHandler) HandlePaymentWebhook(c *gin.Context) {
	provided := c.GetHeader("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.webhookSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid webhook secret"})
		return
	}

	var req models.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid webhook payload", Details: err.Error()})
		return
	}

	if err := h.billingService.ConfirmPayment(c.Request.Context(), req); err != nil {
		if errors.Is(err, core.ErrInvalidTier) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrInvalidTier.Error(), Details: err.Error()})
			return
		}
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process payment confirmation"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Payment confirmed"})
}

// CancelSubscription handles POST /billing/cancel
func (h *BillingHandler) CancelSubscription(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	if err := h.billingService.CancelSubscription(c.Request.Context(), userID.(string)); err != nil {
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to cancel subscription"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Subscription cancelled"})
}
