package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fitfx-backend-go/internal/config"
	"fitfx-backend-go/internal/entitlement"
	"fitfx-backend-go/internal/models"
)

// Plan describes one purchasable subscription plan as shown to clients.
type Plan struct {
	Tier        string   `json:"tier"`
	Name        string   `json:"name"`
	PriceLabel  string   `json:"priceLabel"`
	PaymentLink string   `json:"paymentLink,omitempty"`
	ItemLimit   int      `json:"itemLimit,omitempty"`
	Unlimited   bool     `json:"unlimited"`
	Features    []string `json:"features"`
}

// billingService implements the BillingService interface. Payment collection
// happens off-platform through payment links; this service only lists plans
// and applies the provider's webhook result to the subscription record.
type billingService struct {
	subscriptionService SubscriptionService
	appConfig           *config.Config
	logger              *zap.Logger
}

// NewBillingService creates a new BillingService instance.
func NewBillingService(subscriptionService SubscriptionService, appConfig *config.Config, logger *zap.Logger) BillingService {
	return &billingService{
		subscriptionService: subscriptionService,
		appConfig:           appConfig,
		logger:              logger,
	}
}

// Plans lists the available subscription plans. Payment links come from
// configuration so they can point at a sandbox in non-production setups.
func (s *billingService) Plans() []Plan {
	freeLimit := entitlement.WardrobeLimit(entitlement.TierFree)
	plusLimit := entitlement.WardrobeLimit(entitlement.TierStylePlus)
	return []Plan{
		{
			Tier:       string(entitlement.TierFree),
			Name:       entitlement.TierFree.DisplayName(),
			PriceLabel: "Free",
			ItemLimit:  freeLimit.Count,
			Features:   []string{"AI photo edit", "Color suggestions"},
		},
		{
			Tier:        string(entitlement.TierStylePlus),
			Name:        entitlement.TierStylePlus.DisplayName(),
			PriceLabel:  "Monthly",
			PaymentLink: s.appConfig.PaymentLinkStylePlus,
			ItemLimit:   plusLimit.Count,
			Features:    []string{"AI photo edit", "Color suggestions", "Virtual try-on"},
		},
		{
			Tier:        string(entitlement.TierStyleX),
			Name:        entitlement.TierStyleX.DisplayName(),
			PriceLabel:  "Monthly",
			PaymentLink: s.appConfig.PaymentLinkStyleX,
			Unlimited:   true,
			Features:    []string{"AI photo edit", "Color suggestions", "Virtual try-on", "Fabric mixer"},
		},
	}
}

// ConfirmPayment applies a successful payment-link checkout to the user's
// subscription. The tier string comes from the provider's metadata; anything
// that does not resolve to a paid tier is rejected.
func (s *billingService) ConfirmPayment(ctx context.Context, req models.PaymentWebhookRequest) error {
	tier := entitlement.ParseTier(req.Tier)
	if string(tier) != req.Tier {
		return fmt.Errorf("%w: '%s'", ErrInvalidTier, req.Tier)
	}

	if _, err := s.subscriptionService.ActivatePaid(ctx, req.UserID, tier, req.PaymentID, req.OrderID, req.EndDate); err != nil {
		return fmt.Errorf("failed to confirm payment for user '%s': %w", req.UserID, err)
	}

	s.logger.Info("Payment confirmed",
		zap.String("userId", req.UserID),
		zap.String("tier", string(tier)),
		zap.String("paymentId", req.PaymentID))
	return nil
}

// CancelSubscription downgrades the user to the free plan.
func (s *billingService) CancelSubscription(ctx context.Context, userID string) error {
	return s.subscriptionService.Cancel(ctx, userID)
}
